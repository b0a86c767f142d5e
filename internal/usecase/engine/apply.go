package engine

import (
	"context"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
)

// Apply runs the forward ledger effects of an existing transaction as
// its own atomic unit.
func (e *DefaultEngine) Apply(ctx context.Context, trx *domain.FuelTransaction, mode ApplyMode) error {
	var alerts []domain.ThresholdAlert
	err := e.txManager.WithTransaction(ctx, func(s domain.Store) error {
		applied, err := e.ApplyIn(s, trx, mode)
		if err != nil {
			return err
		}
		alerts = applied
		return nil
	})
	if err != nil {
		return err
	}
	e.PublishAlerts(alerts)
	return nil
}

// Reverse undoes the ledger effects of a transaction. It must run while
// the transaction record is still readable.
func (e *DefaultEngine) Reverse(ctx context.Context, trx *domain.FuelTransaction) error {
	var alerts []domain.ThresholdAlert
	err := e.txManager.WithTransaction(ctx, func(s domain.Store) error {
		reversed, err := e.ReverseIn(s, trx)
		if err != nil {
			return err
		}
		alerts = reversed
		return nil
	})
	if err != nil {
		return err
	}
	e.PublishAlerts(alerts)
	if e.metrics != nil {
		e.metrics.RecordTransactionReversed(string(trx.Type), trx.FuelAmount)
	}
	return nil
}

// AdjustForAmountChange re-applies only the amount delta of an edited
// transaction.
func (e *DefaultEngine) AdjustForAmountChange(ctx context.Context, trx *domain.FuelTransaction, oldAmount, newAmount float64) error {
	var alerts []domain.ThresholdAlert
	err := e.txManager.WithTransaction(ctx, func(s domain.Store) error {
		adjusted, err := e.AdjustIn(s, trx, oldAmount, newAmount)
		if err != nil {
			return err
		}
		alerts = adjusted
		return nil
	})
	if err != nil {
		return err
	}
	e.PublishAlerts(alerts)
	if e.metrics != nil {
		e.metrics.RecordTransactionAdjusted(string(trx.Type), newAmount-oldAmount)
	}
	return nil
}
