package domain

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	VendorToStorage TransactionType = "VENDOR_TO_STORAGE"
	StorageToTruck  TransactionType = "STORAGE_TO_TRUCK"
	StorageToUnit   TransactionType = "STORAGE_TO_UNIT"
	TruckToUnit     TransactionType = "TRUCK_TO_UNIT"
)

// FuelTransaction is a recorded fuel movement. The populated references
// must exactly match what the type requires, see TypeRequirements.
type FuelTransaction struct {
	ID                uuid.UUID
	Code              string
	Type              TransactionType
	SourceContainerID *uuid.UUID
	DestContainerID   *uuid.UUID
	UnitID            *uuid.UUID
	FuelAmount        float64
	UnitDistance      *float64
	UnitHours         *float64
	TransactionDate   time.Time
	Notes             string
	Approved          bool
	CreatedBy         uuid.UUID
	ApprovedBy        *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// RefRequirement describes which references a transaction type must carry
// and the container kinds those references must resolve to.
type RefRequirement struct {
	NeedsSource bool
	SourceKind  ContainerKind
	NeedsDest   bool
	DestKind    ContainerKind
	NeedsUnit   bool
}

var typeRequirements = map[TransactionType]RefRequirement{
	VendorToStorage: {NeedsDest: true, DestKind: KindStorage},
	StorageToTruck:  {NeedsSource: true, SourceKind: KindStorage, NeedsDest: true, DestKind: KindTruck},
	StorageToUnit:   {NeedsSource: true, SourceKind: KindStorage, NeedsUnit: true},
	TruckToUnit:     {NeedsSource: true, SourceKind: KindTruck, NeedsUnit: true},
}

func TypeRequirements(t TransactionType) (RefRequirement, bool) {
	req, ok := typeRequirements[t]
	return req, ok
}

func (t *FuelTransaction) IsDeleted() bool {
	return t.DeletedAt != nil
}

// TransactionChange is the whitelisted set of mutable transaction fields.
// Approval and audit fields are deliberately absent.
type TransactionChange struct {
	Type              *TransactionType `json:"type,omitempty"`
	SourceContainerID *uuid.UUID       `json:"source_container_id,omitempty"`
	DestContainerID   *uuid.UUID       `json:"dest_container_id,omitempty"`
	UnitID            *uuid.UUID       `json:"unit_id,omitempty"`
	FuelAmount        *float64         `json:"fuel_amount,omitempty"`
	UnitDistance      *float64         `json:"unit_distance,omitempty"`
	UnitHours         *float64         `json:"unit_hours,omitempty"`
	TransactionDate   *time.Time       `json:"transaction_date,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

// ApplyTo copies the populated change fields onto the transaction.
func (ch *TransactionChange) ApplyTo(trx *FuelTransaction) {
	if ch.Type != nil {
		trx.Type = *ch.Type
	}
	if ch.SourceContainerID != nil {
		trx.SourceContainerID = ch.SourceContainerID
	}
	if ch.DestContainerID != nil {
		trx.DestContainerID = ch.DestContainerID
	}
	if ch.UnitID != nil {
		trx.UnitID = ch.UnitID
	}
	if ch.FuelAmount != nil {
		trx.FuelAmount = *ch.FuelAmount
	}
	if ch.UnitDistance != nil {
		trx.UnitDistance = ch.UnitDistance
	}
	if ch.UnitHours != nil {
		trx.UnitHours = ch.UnitHours
	}
	if ch.TransactionDate != nil {
		trx.TransactionDate = *ch.TransactionDate
	}
	if ch.Notes != nil {
		trx.Notes = *ch.Notes
	}
}

type TransactionFilters struct {
	Types       []TransactionType
	ContainerID *uuid.UUID
	UnitID      *uuid.UUID
	DateFrom    time.Time
	DateTo      time.Time
	Deleted     bool
}

// UnitReadingPoint is one historical meter reading made at refuelling
// time, used for consumption estimates.
type UnitReadingPoint struct {
	TransactionID   uuid.UUID
	FuelAmount      float64
	UnitDistance    *float64
	UnitHours       *float64
	TransactionDate time.Time
}

type TransactionRepository interface {
	CreateTransaction(trx *FuelTransaction) error
	GetTransactionByID(trxID uuid.UUID) (*FuelTransaction, error)
	// GetTransactionForUpdate locks the transaction row; soft-deleted rows
	// are still visible so deletes can be restored.
	GetTransactionForUpdate(trxID uuid.UUID) (*FuelTransaction, error)
	UpdateTransaction(trx *FuelTransaction) error
	SoftDeleteTransaction(trxID uuid.UUID) error
	RestoreTransaction(trxID uuid.UUID) error
	GetTransactions(filters TransactionFilters, page, limit int64) ([]*FuelTransaction, int64, error)
	// LatestUnitReadings returns the most recent applied transactions that
	// reference the unit, newest first.
	LatestUnitReadings(unitID uuid.UUID, limit int) ([]UnitReadingPoint, error)
}
