package mappers

import (
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ToDomainContainer(model *models.ContainerModel) *domain.FuelContainer {
	return &domain.FuelContainer{
		ID:              uuid.MustParse(model.ID),
		Code:            model.Code,
		Name:            model.Name,
		Kind:            domain.ContainerKind(model.Kind),
		MaxCapacity:     model.MaxCapacity,
		CurrentCapacity: model.CurrentCapacity,
		MinThreshold:    model.MinThreshold,
		Active:          model.Active,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		DeletedAt:       deletedAtPtr(model.DeletedAt),
	}
}

func ToGORMContainer(container *domain.FuelContainer) *models.ContainerModel {
	return &models.ContainerModel{
		ID:              container.ID.String(),
		Code:            container.Code,
		Name:            container.Name,
		Kind:            string(container.Kind),
		MaxCapacity:     container.MaxCapacity,
		CurrentCapacity: container.CurrentCapacity,
		MinThreshold:    container.MinThreshold,
		Active:          container.Active,
		CreatedAt:       container.CreatedAt,
		UpdatedAt:       container.UpdatedAt,
	}
}

func deletedAtPtr(deletedAt gorm.DeletedAt) *time.Time {
	if !deletedAt.Valid {
		return nil
	}
	t := deletedAt.Time
	return &t
}
