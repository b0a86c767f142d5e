package models

import (
	"time"

	"gorm.io/gorm"
)

type ContainerModel struct {
	ID              string  `gorm:"primaryKey;type:uuid"`
	Code            string  `gorm:"uniqueIndex;not null"`
	Name            string
	Kind            string  `gorm:"index;not null"`
	MaxCapacity     float64 `gorm:"not null"`
	CurrentCapacity float64 `gorm:"not null"`
	MinThreshold    float64 `gorm:"not null"`
	Active          bool    `gorm:"default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (ContainerModel) TableName() string {
	return "fuel_containers"
}
