package engine

import (
	"context"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

// Delete reverses the ledger effects of a transaction and soft-deletes
// the record, in that order and in one atomic unit. Out-of-window
// deletes by non-managers are refused with ErrApprovalRequired.
func (e *DefaultEngine) Delete(ctx context.Context, trxID uuid.UUID, actor domain.Actor, now time.Time) error {
	started := time.Now()
	var trxType domain.TransactionType
	var amount float64
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

		reversed, err := e.ReverseIn(s, trx)
		if err != nil {
			return err
		}
		if err := s.Transactions().SoftDeleteTransaction(trx.ID); err != nil {
			return err
		}
		alerts = reversed
		trxType = trx.Type
		amount = trx.FuelAmount
		return nil
	})
	if err != nil {
		if e.metrics != nil {
			e.metrics.RecordEngineError("delete", errorLabel(err))
		}
		return err
	}

	e.PublishAlerts(alerts)
	if e.metrics != nil {
		e.metrics.RecordTransactionReversed(string(trxType), amount)
		e.metrics.RecordOperationDuration("delete", time.Since(started).Seconds())
	}
	return nil
}

// Restore replays a soft-deleted transaction's forward effects and
// clears the delete marker. The replay can fail bounds checks if the
// fuel has since been moved elsewhere; nothing commits in that case.
func (e *DefaultEngine) Restore(ctx context.Context, trxID uuid.UUID, actor domain.Actor) (*domain.FuelTransaction, error) {
	if !actor.CanApprove() {
		return nil, domain.ErrForbidden
	}

	var restored *domain.FuelTransaction
	var alerts []domain.ThresholdAlert

	err := e.txManager.WithTransaction(ctx, func(s domain.Store) error {
		trx, err := s.Transactions().GetTransactionForUpdate(trxID)
		if err != nil {
			return err
		}
		if !trx.IsDeleted() {
			return domain.ErrNotDeleted
		}

		applied, err := e.ApplyIn(s, trx, ModeRestore)
		if err != nil {
			return err
		}
		if err := s.Transactions().RestoreTransaction(trx.ID); err != nil {
			return err
		}
		trx.DeletedAt = nil
		alerts = applied
		restored = trx
		return nil
	})
	if err != nil {
		if e.metrics != nil {
			e.metrics.RecordEngineError("restore", errorLabel(err))
		}
		return nil, err
	}

	e.PublishAlerts(alerts)
	if e.metrics != nil {
		e.metrics.RecordTransactionCreated(string(restored.Type), restored.FuelAmount)
	}
	return restored, nil
}
