package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

type CreateUnitInput struct {
	Code            string
	Name            string
	CurrentDistance float64
	CurrentHours    float64
}

type UpdateUnitInput struct {
	Name                *string
	Active              *bool
	LastServiceDistance *float64
	LastServiceHours    *float64
}

type UnitUsecase interface {
	CreateUnit(ctx context.Context, input *CreateUnitInput) (*domain.FuelUnit, error)
	UpdateUnit(ctx context.Context, unitID uuid.UUID, input *UpdateUnitInput) (*domain.FuelUnit, error)
	RetireUnit(ctx context.Context, unitID uuid.UUID) error
	GetUnitByID(ctx context.Context, unitID uuid.UUID) (*domain.FuelUnit, error)
	GetUnits(ctx context.Context, page, limit int64) ([]*domain.FuelUnit, int64, error)
}

type DefaultUnitUsecase struct {
	txManager domain.TxManager
}

func NewDefaultUnitUsecase(txManager domain.TxManager) *DefaultUnitUsecase {
	return &DefaultUnitUsecase{txManager: txManager}
}

func (uc *DefaultUnitUsecase) CreateUnit(ctx context.Context, input *CreateUnitInput) (*domain.FuelUnit, error) {
	unit := &domain.FuelUnit{
		ID:              uuid.New(),
		Code:            strings.TrimSpace(input.Code),
		Name:            input.Name,
		CurrentDistance: input.CurrentDistance,
		CurrentHours:    input.CurrentHours,
		Active:          true,
		CreatedAt:       time.Now(),
	}
	if err := uc.txManager.Store().Units().CreateUnit(unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// UpdateUnit changes unit metadata and service markers. Meter readings
// are advanced only by the Transaction Engine.
func (uc *DefaultUnitUsecase) UpdateUnit(ctx context.Context, unitID uuid.UUID, input *UpdateUnitInput) (*domain.FuelUnit, error) {
	var updated *domain.FuelUnit
	err := uc.txManager.WithTransaction(ctx, func(s domain.Store) error {
		unit, err := s.Units().GetUnitForUpdate(unitID)
		if err != nil {
			return err
		}
		if input.Name != nil {
			unit.Name = *input.Name
		}
		if input.Active != nil {
			unit.Active = *input.Active
		}
		if input.LastServiceDistance != nil {
			unit.LastServiceDistance = *input.LastServiceDistance
		}
		if input.LastServiceHours != nil {
			unit.LastServiceHours = *input.LastServiceHours
		}
		if err := s.Units().UpdateUnit(unit); err != nil {
			return err
		}
		updated = unit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *DefaultUnitUsecase) RetireUnit(ctx context.Context, unitID uuid.UUID) error {
	return uc.txManager.Store().Units().SoftDeleteUnit(unitID)
}

func (uc *DefaultUnitUsecase) GetUnitByID(ctx context.Context, unitID uuid.UUID) (*domain.FuelUnit, error) {
	return uc.txManager.Store().Units().GetUnitByID(unitID)
}

func (uc *DefaultUnitUsecase) GetUnits(ctx context.Context, page, limit int64) ([]*domain.FuelUnit, int64, error) {
	return uc.txManager.Store().Units().GetUnits(page, limit)
}
