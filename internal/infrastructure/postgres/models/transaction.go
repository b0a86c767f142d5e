package models

import (
	"time"

	"gorm.io/gorm"
)

type TransactionModel struct {
	ID                string  `gorm:"primaryKey;type:uuid"`
	Code              string  `gorm:"uniqueIndex;not null"`
	Type              string  `gorm:"index;not null"`
	SourceContainerID *string `gorm:"type:uuid;index"`
	DestContainerID   *string `gorm:"type:uuid;index"`
	UnitID            *string `gorm:"type:uuid;index"`
	FuelAmount        float64 `gorm:"not null"`
	UnitDistance      *float64
	UnitHours         *float64
	TransactionDate   time.Time `gorm:"index;not null"`
	Notes             string
	Approved          bool    `gorm:"default:false"`
	CreatedBy         string  `gorm:"type:uuid;not null"`
	ApprovedBy        *string `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`

	SourceContainer *ContainerModel `gorm:"foreignKey:SourceContainerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	DestContainer   *ContainerModel `gorm:"foreignKey:DestContainerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Unit            *UnitModel      `gorm:"foreignKey:UnitID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (TransactionModel) TableName() string {
	return "fuel_transactions"
}
