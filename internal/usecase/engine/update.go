package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

// Update mutates an existing transaction directly. Callers get
// ErrApprovalRequired when the transaction is outside the free-edit
// window and the actor cannot bypass it; the approval workflow is the
// path for those.
func (e *DefaultEngine) Update(ctx context.Context, trxID uuid.UUID, change *domain.TransactionChange, actor domain.Actor, now time.Time) (*domain.FuelTransaction, error) {
	started := time.Now()
	var updated *domain.FuelTransaction
	var alerts []domain.ThresholdAlert

	err := e.txManager.WithTransaction(ctx, func(s domain.Store) error {
		trx, err := s.Transactions().GetTransactionForUpdate(trxID)
		if err != nil {
			return err
		}
		if trx.IsDeleted() {
			return domain.ErrTransactionDeleted
		}
		if e.RequiresApprovalForEdit(trx, now) && !actor.CanApprove() {
			return domain.ErrApprovalRequired
		}

		applied, next, err := e.ApplyChangeIn(s, trx, change)
		if err != nil {
			return err
		}
		alerts = applied
		updated = next
		return nil
	})
	if err != nil {
		if e.metrics != nil {
			e.metrics.RecordEngineError("edit", errorLabel(err))
		}
		return nil, err
	}

	e.PublishAlerts(alerts)
	if e.metrics != nil {
		e.metrics.RecordOperationDuration("edit", time.Since(started).Seconds())
	}
	return updated, nil
}

// ApplyChangeIn applies a whitelisted field change to a live transaction:
// the amount delta goes through the ledger, the rest is a plain field
// update. Shared by direct edits and approved edit requests.
func (e *DefaultEngine) ApplyChangeIn(s domain.Store, trx *domain.FuelTransaction, change *domain.TransactionChange) ([]domain.ThresholdAlert, *domain.FuelTransaction, error) {
	next := *trx
	change.ApplyTo(&next)

	if violations := e.validateChange(s, &next); len(violations) > 0 {
		return nil, nil, &domain.ValidationError{Violations: violations}
	}

	var alerts []domain.ThresholdAlert
	if next.FuelAmount != trx.FuelAmount {
		// The delta is applied against the original references: that is
		// what the ledger recorded when the transaction was first applied.
		adjusted, err := e.AdjustIn(s, trx, trx.FuelAmount, next.FuelAmount)
		if err != nil {
			return nil, nil, err
		}
		alerts = adjusted
	}

	if err := s.Transactions().UpdateTransaction(&next); err != nil {
		return nil, nil, fmt.Errorf("updating transaction %s: %w", next.Code, err)
	}
	if err := e.advanceUnitReadings(s, &next); err != nil {
		return nil, nil, err
	}
	return alerts, &next, nil
}

// validateChange runs the structural and referenced-state rules on an
// edited transaction. Only the insufficient-fuel rule is skipped: the
// original amount is already applied, bounds-checking the delta is the
// ledger's job. Container existence and kind are still enforced so an
// edit cannot repoint a reference at a missing or wrong-kind container.
func (e *DefaultEngine) validateChange(s domain.Store, next *domain.FuelTransaction) []domain.Violation {
	req, ok := domain.TypeRequirements(next.Type)
	if !ok {
		return []domain.Violation{{
			Field:   "type",
			Code:    CodeUnknownType,
			Message: fmt.Sprintf("unknown transaction type %q", next.Type),
		}}
	}

	violations := checkReferences(next, req)
	if next.FuelAmount <= 0 {
		violations = append(violations, domain.Violation{
			Field:   "fuel_amount",
			Code:    CodeNonPositiveAmount,
			Message: "fuel amount must be greater than zero",
		})
	}
	if req.NeedsSource && next.SourceContainerID != nil {
		violations = append(violations, e.checkContainer(s, *next.SourceContainerID, req.SourceKind, "source_container_id", next.FuelAmount, false)...)
	}
	if req.NeedsDest && next.DestContainerID != nil {
		violations = append(violations, e.checkContainer(s, *next.DestContainerID, req.DestKind, "dest_container_id", next.FuelAmount, false)...)
	}
	if req.NeedsUnit && next.UnitID != nil {
		violations = append(violations, e.checkUnitReadings(s, next)...)
	}
	return violations
}
