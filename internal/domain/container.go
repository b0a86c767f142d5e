package domain

import (
	"time"

	"github.com/google/uuid"
)

type ContainerKind string

const (
	KindStorage ContainerKind = "STORAGE"
	KindTruck   ContainerKind = "TRUCK"
)

type CapacityDirection string

const (
	DirectionIncrease CapacityDirection = "INCREASE"
	DirectionDecrease CapacityDirection = "DECREASE"
)

// criticalPercentage is the level at which a container alert escalates
// from warning to critical.
const criticalPercentage = 5.0

type FuelContainer struct {
	ID              uuid.UUID
	Code            string
	Name            string
	Kind            ContainerKind
	MaxCapacity     float64
	CurrentCapacity float64
	MinThreshold    float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// ApplyDelta moves the container level by amount in the given direction.
// The level invariant 0 <= current <= max is enforced on every call and a
// violation is reported, never clamped.
func (c *FuelContainer) ApplyDelta(amount float64, direction CapacityDirection) error {
	newLevel := c.CurrentCapacity
	switch direction {
	case DirectionIncrease:
		newLevel += amount
	case DirectionDecrease:
		newLevel -= amount
	}
	if newLevel < 0 || newLevel > c.MaxCapacity {
		return &CapacityError{
			ContainerID:   c.ID,
			ContainerCode: c.Code,
			Current:       c.CurrentCapacity,
			Max:           c.MaxCapacity,
			Attempted:     newLevel,
		}
	}
	c.CurrentCapacity = newLevel
	return nil
}

func (c *FuelContainer) AvailableCapacity() float64 {
	return c.MaxCapacity - c.CurrentCapacity
}

func (c *FuelContainer) CapacityPercentage() float64 {
	if c.MaxCapacity == 0 {
		return 0
	}
	return c.CurrentCapacity / c.MaxCapacity * 100
}

func (c *FuelContainer) IsBelowThreshold() bool {
	return c.CurrentCapacity <= c.MinThreshold
}

func (c *FuelContainer) IsCritical() bool {
	return c.CapacityPercentage() <= criticalPercentage
}

type ContainerFilters struct {
	Kind   ContainerKind
	Active *bool
	Code   string
}

type ContainerRepository interface {
	CreateContainer(container *FuelContainer) error
	GetContainerByID(containerID uuid.UUID) (*FuelContainer, error)
	// GetContainerForUpdate locks the container row for the duration of the
	// surrounding store transaction.
	GetContainerForUpdate(containerID uuid.UUID) (*FuelContainer, error)
	UpdateContainerLevel(containerID uuid.UUID, newLevel float64) error
	UpdateContainer(container *FuelContainer) error
	SoftDeleteContainer(containerID uuid.UUID) error
	GetContainers(filters ContainerFilters, page, limit int64) ([]*FuelContainer, int64, error)
}
