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

type DefaultUnitRepository struct {
	db *gorm.DB
}

func NewDefaultUnitRepository(db *gorm.DB) *DefaultUnitRepository {
	return &DefaultUnitRepository{db: db}
}

func (r *DefaultUnitRepository) CreateUnit(unit *domain.FuelUnit) error {
	return r.db.Create(mappers.ToGORMUnit(unit)).Error
}

func (r *DefaultUnitRepository) GetUnitByID(unitID uuid.UUID) (*domain.FuelUnit, error) {
	var model models.UnitModel
	if err := r.db.First(&model, "id = ?", unitID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUnit(&model), nil
}

func (r *DefaultUnitRepository) GetUnitForUpdate(unitID uuid.UUID) (*domain.FuelUnit, error) {
	var model models.UnitModel
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", unitID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUnit(&model), nil
}

func (r *DefaultUnitRepository) UpdateUnit(unit *domain.FuelUnit) error {
	model := mappers.ToGORMUnit(unit)
	return r.db.Model(&models.UnitModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                  model.Name,
			"active":                model.Active,
			"last_service_distance": model.LastServiceDistance,
			"last_service_hours":    model.LastServiceHours,
		}).Error
}

func (r *DefaultUnitRepository) UpdateUnitReadings(unitID uuid.UUID, distance, hours float64) error {
	result := r.db.Model(&models.UnitModel{}).
		Where("id = ?", unitID.String()).
		Updates(map[string]interface{}{
			"current_distance": distance,
			"current_hours":    hours,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *DefaultUnitRepository) SoftDeleteUnit(unitID uuid.UUID) error {
	result := r.db.Delete(&models.UnitModel{}, "id = ?", unitID.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *DefaultUnitRepository) GetUnits(page, limit int64) ([]*domain.FuelUnit, int64, error) {
	query := r.db.Model(&models.UnitModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count units: %w", err)
	}

	offset := (page - 1) * limit
	var unitModels []models.UnitModel
	if err := query.Order("code ASC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&unitModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find units: %w", err)
	}

	units := make([]*domain.FuelUnit, len(unitModels))
	for i, model := range unitModels {
		units[i] = mappers.ToDomainUnit(&model)
	}
	return units, total, nil
}
