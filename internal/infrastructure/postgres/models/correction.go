package models

import "time"

type CorrectionModel struct {
	ID            string  `gorm:"primaryKey;type:uuid"`
	ContainerID   string  `gorm:"type:uuid;index;not null"`
	PreviousLevel float64 `gorm:"not null"`
	NewLevel      float64 `gorm:"not null"`
	Reason        string  `gorm:"type:text;not null"`
	CorrectedBy   string  `gorm:"type:uuid;not null"`
	CreatedAt     time.Time

	Container *ContainerModel `gorm:"foreignKey:ContainerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (CorrectionModel) TableName() string {
	return "capacity_corrections"
}
