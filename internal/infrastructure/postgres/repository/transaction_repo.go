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

type DefaultTransactionRepository struct {
	db *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{db: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(trx *domain.FuelTransaction) error {
	return r.db.Create(mappers.ToGORMTransaction(trx)).Error
}

func (r *DefaultTransactionRepository) GetTransactionByID(trxID uuid.UUID) (*domain.FuelTransaction, error) {
	var model models.TransactionModel
	if err := r.db.Unscoped().First(&model, "id = ?", trxID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

// GetTransactionForUpdate locks the row. Soft-deleted rows stay visible
// here: reversal and restore both need to read them.
func (r *DefaultTransactionRepository) GetTransactionForUpdate(trxID uuid.UUID) (*domain.FuelTransaction, error) {
	var model models.TransactionModel
	if err := r.db.Unscoped().Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", trxID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) UpdateTransaction(trx *domain.FuelTransaction) error {
	model := mappers.ToGORMTransaction(trx)
	return r.db.Model(&models.TransactionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"type":                model.Type,
			"source_container_id": model.SourceContainerID,
			"dest_container_id":   model.DestContainerID,
			"unit_id":             model.UnitID,
			"fuel_amount":         model.FuelAmount,
			"unit_distance":       model.UnitDistance,
			"unit_hours":          model.UnitHours,
			"transaction_date":    model.TransactionDate,
			"notes":               model.Notes,
			"approved":            model.Approved,
			"approved_by":         model.ApprovedBy,
		}).Error
}

func (r *DefaultTransactionRepository) SoftDeleteTransaction(trxID uuid.UUID) error {
	result := r.db.Delete(&models.TransactionModel{}, "id = ?", trxID.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *DefaultTransactionRepository) RestoreTransaction(trxID uuid.UUID) error {
	result := r.db.Unscoped().Model(&models.TransactionModel{}).
		Where("id = ?", trxID.String()).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactions(filters domain.TransactionFilters, page, limit int64) ([]*domain.FuelTransaction, int64, error) {
	query := r.db.Model(&models.TransactionModel{})
	if filters.Deleted {
		query = query.Unscoped().Where("deleted_at IS NOT NULL")
	}

	if len(filters.Types) > 0 {
		types := make([]string, len(filters.Types))
		for i, t := range filters.Types {
			types[i] = string(t)
		}
		query = query.Where("type IN (?)", types)
	}
	if filters.ContainerID != nil {
		id := filters.ContainerID.String()
		query = query.Where("source_container_id = ? OR dest_container_id = ?", id, id)
	}
	if filters.UnitID != nil {
		query = query.Where("unit_id = ?", filters.UnitID.String())
	}
	if !filters.DateFrom.IsZero() {
		query = query.Where("transaction_date >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		query = query.Where("transaction_date <= ?", filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	offset := (page - 1) * limit
	var trxModels []models.TransactionModel
	if err := query.Order("transaction_date DESC, created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&trxModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}

	transactions := make([]*domain.FuelTransaction, len(trxModels))
	for i, model := range trxModels {
		transactions[i] = mappers.ToDomainTransaction(&model)
	}
	return transactions, total, nil
}

func (r *DefaultTransactionRepository) LatestUnitReadings(unitID uuid.UUID, limit int) ([]domain.UnitReadingPoint, error) {
	var trxModels []models.TransactionModel
	if err := r.db.Model(&models.TransactionModel{}).
		Where("unit_id = ?", unitID.String()).
		Order("transaction_date DESC, created_at DESC").
		Limit(limit).
		Find(&trxModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load unit readings: %w", err)
	}

	points := make([]domain.UnitReadingPoint, len(trxModels))
	for i, model := range trxModels {
		points[i] = domain.UnitReadingPoint{
			TransactionID:   uuid.MustParse(model.ID),
			FuelAmount:      model.FuelAmount,
			UnitDistance:    model.UnitDistance,
			UnitHours:       model.UnitHours,
			TransactionDate: model.TransactionDate,
		}
	}
	return points, nil
}
