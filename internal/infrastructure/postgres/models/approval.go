package models

import (
	"time"

	"gorm.io/datatypes"
)

type ApprovalRequestModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Code            string `gorm:"uniqueIndex;not null"`
	TransactionID   string `gorm:"type:uuid;index;not null"`
	Type            string `gorm:"index;not null"`
	Status          string `gorm:"index;not null"`
	Reason          string `gorm:"type:text;not null"`
	RequestedBy     string `gorm:"type:uuid;index;not null"`
	ApprovedBy      *string `gorm:"type:uuid"`
	OriginalData    datatypes.JSON `gorm:"type:jsonb;not null"`
	NewData         datatypes.JSON `gorm:"type:jsonb"`
	RejectionReason string `gorm:"type:text"`
	ApprovedAt      *time.Time
	UsedAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Transaction *TransactionModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (ApprovalRequestModel) TableName() string {
	return "approval_requests"
}
