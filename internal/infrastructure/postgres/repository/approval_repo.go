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

type DefaultApprovalRepository struct {
	db *gorm.DB
}

func NewDefaultApprovalRepository(db *gorm.DB) *DefaultApprovalRepository {
	return &DefaultApprovalRepository{db: db}
}

func (r *DefaultApprovalRepository) CreateRequest(request *domain.ApprovalRequest) error {
	model, err := mappers.ToGORMRequest(request)
	if err != nil {
		return err
	}
	return r.db.Create(model).Error
}

func (r *DefaultApprovalRepository) GetRequestByID(requestID uuid.UUID) (*domain.ApprovalRequest, error) {
	var model models.ApprovalRequestModel
	if err := r.db.First(&model, "id = ?", requestID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRequest(&model)
}

func (r *DefaultApprovalRepository) GetRequestForUpdate(requestID uuid.UUID) (*domain.ApprovalRequest, error) {
	var model models.ApprovalRequestModel
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", requestID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRequest(&model)
}

func (r *DefaultApprovalRepository) UpdateRequest(request *domain.ApprovalRequest) error {
	model, err := mappers.ToGORMRequest(request)
	if err != nil {
		return err
	}
	return r.db.Model(&models.ApprovalRequestModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":           model.Status,
			"approved_by":      model.ApprovedBy,
			"approved_at":      model.ApprovedAt,
			"rejection_reason": model.RejectionReason,
			"used_at":          model.UsedAt,
		}).Error
}

func (r *DefaultApprovalRepository) GetRequests(filters domain.ApprovalFilters, page, limit int64) ([]*domain.ApprovalRequest, int64, error) {
	query := r.db.Model(&models.ApprovalRequestModel{})

	if filters.TransactionID != nil {
		query = query.Where("transaction_id = ?", filters.TransactionID.String())
	}
	if filters.Status != "" {
		query = query.Where("status = ?", string(filters.Status))
	}
	if filters.Type != "" {
		query = query.Where("type = ?", string(filters.Type))
	}
	if filters.RequestedBy != nil {
		query = query.Where("requested_by = ?", filters.RequestedBy.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count approval requests: %w", err)
	}

	offset := (page - 1) * limit
	var requestModels []models.ApprovalRequestModel
	if err := query.Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find approval requests: %w", err)
	}

	requests := make([]*domain.ApprovalRequest, len(requestModels))
	for i, model := range requestModels {
		request, err := mappers.ToDomainRequest(&model)
		if err != nil {
			return nil, 0, err
		}
		requests[i] = request
	}
	return requests, total, nil
}

type DefaultCorrectionRepository struct {
	db *gorm.DB
}

func NewDefaultCorrectionRepository(db *gorm.DB) *DefaultCorrectionRepository {
	return &DefaultCorrectionRepository{db: db}
}

func (r *DefaultCorrectionRepository) CreateCorrection(correction *domain.CapacityCorrection) error {
	return r.db.Create(mappers.ToGORMCorrection(correction)).Error
}

func (r *DefaultCorrectionRepository) GetCorrectionsByContainer(containerID uuid.UUID, page, limit int64) ([]*domain.CapacityCorrection, int64, error) {
	query := r.db.Model(&models.CorrectionModel{}).
		Where("container_id = ?", containerID.String())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count corrections: %w", err)
	}

	offset := (page - 1) * limit
	var correctionModels []models.CorrectionModel
	if err := query.Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&correctionModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find corrections: %w", err)
	}

	corrections := make([]*domain.CapacityCorrection, len(correctionModels))
	for i, model := range correctionModels {
		corrections[i] = mappers.ToDomainCorrection(&model)
	}
	return corrections, total, nil
}
