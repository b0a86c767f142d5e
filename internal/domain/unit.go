package domain

import (
	"time"

	"github.com/google/uuid"
)

// FuelUnit is a piece of heavy equipment that consumes fuel. Its meter
// readings only ever move forward.
type FuelUnit struct {
	ID                  uuid.UUID
	Code                string
	Name                string
	CurrentDistance     float64
	CurrentHours        float64
	LastServiceDistance float64
	LastServiceHours    float64
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}

// RecordReadings stores new meter readings, ignoring any value lower than
// what is already recorded. Reports whether anything changed.
func (u *FuelUnit) RecordReadings(distance, hours *float64) bool {
	changed := false
	if distance != nil && *distance > u.CurrentDistance {
		u.CurrentDistance = *distance
		changed = true
	}
	if hours != nil && *hours > u.CurrentHours {
		u.CurrentHours = *hours
		changed = true
	}
	return changed
}

func (u *FuelUnit) DistanceSinceService() float64 {
	return u.CurrentDistance - u.LastServiceDistance
}

func (u *FuelUnit) HoursSinceService() float64 {
	return u.CurrentHours - u.LastServiceHours
}

type UnitRepository interface {
	CreateUnit(unit *FuelUnit) error
	GetUnitByID(unitID uuid.UUID) (*FuelUnit, error)
	GetUnitForUpdate(unitID uuid.UUID) (*FuelUnit, error)
	UpdateUnit(unit *FuelUnit) error
	UpdateUnitReadings(unitID uuid.UUID, distance, hours float64) error
	SoftDeleteUnit(unitID uuid.UUID) error
	GetUnits(page, limit int64) ([]*FuelUnit, int64, error)
}
