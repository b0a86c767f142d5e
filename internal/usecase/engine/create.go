package engine

import (
	"context"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

type CreateTransactionInput struct {
	Type              domain.TransactionType
	SourceContainerID *uuid.UUID
	DestContainerID   *uuid.UUID
	UnitID            *uuid.UUID
	FuelAmount        float64
	UnitDistance      *float64
	UnitHours         *float64
	TransactionDate   time.Time
	Notes             string
	CreatedBy         uuid.UUID
}

// Create validates the intent, persists the transaction record and
// applies its ledger effects in one atomic unit.
func (e *DefaultEngine) Create(ctx context.Context, input *CreateTransactionInput) (*domain.FuelTransaction, error) {
	trx := &domain.FuelTransaction{
		ID:                uuid.New(),
		Code:              e.newCode(),
		Type:              input.Type,
		SourceContainerID: input.SourceContainerID,
		DestContainerID:   input.DestContainerID,
		UnitID:            input.UnitID,
		FuelAmount:        input.FuelAmount,
		UnitDistance:      input.UnitDistance,
		UnitHours:         input.UnitHours,
		TransactionDate:   input.TransactionDate,
		Notes:             input.Notes,
		CreatedBy:         input.CreatedBy,
	}
	if trx.TransactionDate.IsZero() {
		trx.TransactionDate = time.Now()
	}

	started := time.Now()
	var alerts []domain.ThresholdAlert
	err := e.txManager.WithTransaction(ctx, func(s domain.Store) error {
		if violations := e.ValidateIn(s, trx); len(violations) > 0 {
			return &domain.ValidationError{Violations: violations}
		}
		if err := s.Transactions().CreateTransaction(trx); err != nil {
			return err
		}
		applied, err := e.ApplyIn(s, trx, ModeCreate)
		if err != nil {
			return err
		}
		alerts = applied
		return nil
	})
	if err != nil {
		if e.metrics != nil {
			e.metrics.RecordEngineError("create", errorLabel(err))
		}
		return nil, err
	}

	e.PublishAlerts(alerts)
	if e.metrics != nil {
		e.metrics.RecordTransactionCreated(string(trx.Type), trx.FuelAmount)
		e.metrics.RecordOperationDuration("create", time.Since(started).Seconds())
	}
	return trx, nil
}
