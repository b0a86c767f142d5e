package mappers

import (
	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.FuelTransaction {
	return &domain.FuelTransaction{
		ID:                uuid.MustParse(model.ID),
		Code:              model.Code,
		Type:              domain.TransactionType(model.Type),
		SourceContainerID: uuidPtrFromString(model.SourceContainerID),
		DestContainerID:   uuidPtrFromString(model.DestContainerID),
		UnitID:            uuidPtrFromString(model.UnitID),
		FuelAmount:        model.FuelAmount,
		UnitDistance:      model.UnitDistance,
		UnitHours:         model.UnitHours,
		TransactionDate:   model.TransactionDate,
		Notes:             model.Notes,
		Approved:          model.Approved,
		CreatedBy:         uuid.MustParse(model.CreatedBy),
		ApprovedBy:        uuidPtrFromString(model.ApprovedBy),
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
		DeletedAt:         deletedAtPtr(model.DeletedAt),
	}
}

func ToGORMTransaction(trx *domain.FuelTransaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:                trx.ID.String(),
		Code:              trx.Code,
		Type:              string(trx.Type),
		SourceContainerID: stringPtrFromUUID(trx.SourceContainerID),
		DestContainerID:   stringPtrFromUUID(trx.DestContainerID),
		UnitID:            stringPtrFromUUID(trx.UnitID),
		FuelAmount:        trx.FuelAmount,
		UnitDistance:      trx.UnitDistance,
		UnitHours:         trx.UnitHours,
		TransactionDate:   trx.TransactionDate,
		Notes:             trx.Notes,
		Approved:          trx.Approved,
		CreatedBy:         trx.CreatedBy.String(),
		ApprovedBy:        stringPtrFromUUID(trx.ApprovedBy),
		CreatedAt:         trx.CreatedAt,
		UpdatedAt:         trx.UpdatedAt,
	}
}

func uuidPtrFromString(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

func stringPtrFromUUID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
