package models

import (
	"time"

	"gorm.io/gorm"
)

type UnitModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Code                string `gorm:"uniqueIndex;not null"`
	Name                string
	CurrentDistance     float64 `gorm:"not null;default:0"`
	CurrentHours        float64 `gorm:"not null;default:0"`
	LastServiceDistance float64 `gorm:"not null;default:0"`
	LastServiceHours    float64 `gorm:"not null;default:0"`
	Active              bool    `gorm:"default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (UnitModel) TableName() string {
	return "fuel_units"
}
