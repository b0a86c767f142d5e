package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func ToDomainRequest(model *models.ApprovalRequestModel) (*domain.ApprovalRequest, error) {
	var newData *domain.TransactionChange
	if len(model.NewData) > 0 {
		newData = &domain.TransactionChange{}
		if err := json.Unmarshal(model.NewData, newData); err != nil {
			return nil, fmt.Errorf("decoding new_data for request %s: %w", model.Code, err)
		}
	}

	return &domain.ApprovalRequest{
		ID:              uuid.MustParse(model.ID),
		Code:            model.Code,
		TransactionID:   uuid.MustParse(model.TransactionID),
		Type:            domain.RequestType(model.Type),
		Status:          domain.RequestStatus(model.Status),
		Reason:          model.Reason,
		RequestedBy:     uuid.MustParse(model.RequestedBy),
		ApprovedBy:      uuidPtrFromString(model.ApprovedBy),
		OriginalData:    model.OriginalData,
		NewData:         newData,
		RejectionReason: model.RejectionReason,
		ApprovedAt:      model.ApprovedAt,
		UsedAt:          model.UsedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}, nil
}

func ToGORMRequest(request *domain.ApprovalRequest) (*models.ApprovalRequestModel, error) {
	var newData datatypes.JSON
	if request.NewData != nil {
		raw, err := json.Marshal(request.NewData)
		if err != nil {
			return nil, fmt.Errorf("encoding new_data for request %s: %w", request.Code, err)
		}
		newData = raw
	}

	return &models.ApprovalRequestModel{
		ID:              request.ID.String(),
		Code:            request.Code,
		TransactionID:   request.TransactionID.String(),
		Type:            string(request.Type),
		Status:          string(request.Status),
		Reason:          request.Reason,
		RequestedBy:     request.RequestedBy.String(),
		ApprovedBy:      stringPtrFromUUID(request.ApprovedBy),
		OriginalData:    request.OriginalData,
		NewData:         newData,
		RejectionReason: request.RejectionReason,
		ApprovedAt:      request.ApprovedAt,
		UsedAt:          request.UsedAt,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}, nil
}

func ToDomainCorrection(model *models.CorrectionModel) *domain.CapacityCorrection {
	return &domain.CapacityCorrection{
		ID:            uuid.MustParse(model.ID),
		ContainerID:   uuid.MustParse(model.ContainerID),
		PreviousLevel: model.PreviousLevel,
		NewLevel:      model.NewLevel,
		Reason:        model.Reason,
		CorrectedBy:   uuid.MustParse(model.CorrectedBy),
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMCorrection(correction *domain.CapacityCorrection) *models.CorrectionModel {
	return &models.CorrectionModel{
		ID:            correction.ID.String(),
		ContainerID:   correction.ContainerID.String(),
		PreviousLevel: correction.PreviousLevel,
		NewLevel:      correction.NewLevel,
		Reason:        correction.Reason,
		CorrectedBy:   correction.CorrectedBy.String(),
		CreatedAt:     correction.CreatedAt,
	}
}
