package repository

import (
	"errors"
	"fmt"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres/mappers"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultContainerRepository struct {
	db *gorm.DB
}

func NewDefaultContainerRepository(db *gorm.DB) *DefaultContainerRepository {
	return &DefaultContainerRepository{db: db}
}

func (r *DefaultContainerRepository) CreateContainer(container *domain.FuelContainer) error {
	return r.db.Create(mappers.ToGORMContainer(container)).Error
}

func (r *DefaultContainerRepository) GetContainerByID(containerID uuid.UUID) (*domain.FuelContainer, error) {
	var model models.ContainerModel
	if err := r.db.First(&model, "id = ?", containerID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContainerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainContainer(&model), nil
}

// GetContainerForUpdate takes a row lock so concurrent capacity checks
// against the same container serialize. Only meaningful inside a store
// transaction.
func (r *DefaultContainerRepository) GetContainerForUpdate(containerID uuid.UUID) (*domain.FuelContainer, error) {
	var model models.ContainerModel
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", containerID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContainerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainContainer(&model), nil
}

func (r *DefaultContainerRepository) UpdateContainerLevel(containerID uuid.UUID, newLevel float64) error {
	result := r.db.Model(&models.ContainerModel{}).
		Where("id = ?", containerID.String()).
		Update("current_capacity", newLevel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrContainerNotFound
	}
	return nil
}

func (r *DefaultContainerRepository) UpdateContainer(container *domain.FuelContainer) error {
	model := mappers.ToGORMContainer(container)
	return r.db.Model(&models.ContainerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"min_threshold": model.MinThreshold,
			"active":        model.Active,
		}).Error
}

func (r *DefaultContainerRepository) SoftDeleteContainer(containerID uuid.UUID) error {
	result := r.db.Delete(&models.ContainerModel{}, "id = ?", containerID.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrContainerNotFound
	}
	return nil
}

func (r *DefaultContainerRepository) GetContainers(filters domain.ContainerFilters, page, limit int64) ([]*domain.FuelContainer, int64, error) {
	query := r.db.Model(&models.ContainerModel{})

	if filters.Kind != "" {
		query = query.Where("kind = ?", string(filters.Kind))
	}
	if filters.Active != nil {
		query = query.Where("active = ?", *filters.Active)
	}
	if filters.Code != "" {
		query = query.Where("code = ?", filters.Code)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count containers: %w", err)
	}

	offset := (page - 1) * limit
	var containerModels []models.ContainerModel
	if err := query.Order("code ASC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&containerModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find containers: %w", err)
	}

	containers := make([]*domain.FuelContainer, len(containerModels))
	for i, model := range containerModels {
		containers[i] = mappers.ToDomainContainer(&model)
	}
	return containers, total, nil
}
