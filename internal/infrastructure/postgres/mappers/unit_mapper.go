package mappers

import (
	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
)

func ToDomainUnit(model *models.UnitModel) *domain.FuelUnit {
	return &domain.FuelUnit{
		ID:                  uuid.MustParse(model.ID),
		Code:                model.Code,
		Name:                model.Name,
		CurrentDistance:     model.CurrentDistance,
		CurrentHours:        model.CurrentHours,
		LastServiceDistance: model.LastServiceDistance,
		LastServiceHours:    model.LastServiceHours,
		Active:              model.Active,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
		DeletedAt:           deletedAtPtr(model.DeletedAt),
	}
}

func ToGORMUnit(unit *domain.FuelUnit) *models.UnitModel {
	return &models.UnitModel{
		ID:                  unit.ID.String(),
		Code:                unit.Code,
		Name:                unit.Name,
		CurrentDistance:     unit.CurrentDistance,
		CurrentHours:        unit.CurrentHours,
		LastServiceDistance: unit.LastServiceDistance,
		LastServiceHours:    unit.LastServiceHours,
		Active:              unit.Active,
		CreatedAt:           unit.CreatedAt,
		UpdatedAt:           unit.UpdatedAt,
	}
}
