package engine

import (
	"context"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

func (e *DefaultEngine) GetTransactionByID(ctx context.Context, trxID uuid.UUID) (*domain.FuelTransaction, error) {
	return e.txManager.Store().Transactions().GetTransactionByID(trxID)
}

func (e *DefaultEngine) GetTransactions(ctx context.Context, filters domain.TransactionFilters, page, limit int64) ([]*domain.FuelTransaction, int64, error) {
	return e.txManager.Store().Transactions().GetTransactions(filters, page, limit)
}

// ConsumptionPerDistance estimates fuel burn per distance from the two
// most recent refuellings of a unit: latest fuel amount over the
// distance covered between them. Nil when there is no usable pair or the
// meters did not move.
func (e *DefaultEngine) ConsumptionPerDistance(ctx context.Context, unitID uuid.UUID) (*float64, error) {
	return e.consumptionEstimate(unitID, func(p domain.UnitReadingPoint) *float64 { return p.UnitDistance })
}

// ConsumptionPerHour is the hour-meter variant of ConsumptionPerDistance.
func (e *DefaultEngine) ConsumptionPerHour(ctx context.Context, unitID uuid.UUID) (*float64, error) {
	return e.consumptionEstimate(unitID, func(p domain.UnitReadingPoint) *float64 { return p.UnitHours })
}

func (e *DefaultEngine) consumptionEstimate(unitID uuid.UUID, reading func(domain.UnitReadingPoint) *float64) (*float64, error) {
	points, err := e.txManager.Store().Transactions().LatestUnitReadings(unitID, 2)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, nil
	}
	latest, previous := reading(points[0]), reading(points[1])
	if latest == nil || previous == nil {
		return nil, nil
	}
	span := *latest - *previous
	if span <= 0 {
		return nil, nil
	}
	estimate := points[0].FuelAmount / span
	return &estimate, nil
}
