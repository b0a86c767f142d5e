package httpapi

import (
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/usecase"
	"github.com/google/uuid"
)

type containerResponse struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	Name            string     `json:"name"`
	Kind            string     `json:"kind"`
	MaxCapacity     float64    `json:"max_capacity"`
	CurrentCapacity float64    `json:"current_capacity"`
	MinThreshold    float64    `json:"min_threshold"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

func toContainerResponse(c *domain.FuelContainer) containerResponse {
	return containerResponse{
		ID:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		Kind:            string(c.Kind),
		MaxCapacity:     c.MaxCapacity,
		CurrentCapacity: c.CurrentCapacity,
		MinThreshold:    c.MinThreshold,
		Active:          c.Active,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		DeletedAt:       c.DeletedAt,
	}
}

type unitResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Code                 string     `json:"code"`
	Name                 string     `json:"name"`
	CurrentDistance      float64    `json:"current_distance"`
	CurrentHours         float64    `json:"current_hours"`
	LastServiceDistance  float64    `json:"last_service_distance"`
	LastServiceHours     float64    `json:"last_service_hours"`
	DistanceSinceService float64    `json:"distance_since_service"`
	HoursSinceService    float64    `json:"hours_since_service"`
	Active               bool       `json:"active"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	DeletedAt            *time.Time `json:"deleted_at,omitempty"`
}

func toUnitResponse(u *domain.FuelUnit) unitResponse {
	return unitResponse{
		ID:                   u.ID,
		Code:                 u.Code,
		Name:                 u.Name,
		CurrentDistance:      u.CurrentDistance,
		CurrentHours:         u.CurrentHours,
		LastServiceDistance:  u.LastServiceDistance,
		LastServiceHours:     u.LastServiceHours,
		DistanceSinceService: u.DistanceSinceService(),
		HoursSinceService:    u.HoursSinceService(),
		Active:               u.Active,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
		DeletedAt:            u.DeletedAt,
	}
}

type transactionResponse struct {
	ID                uuid.UUID  `json:"id"`
	Code              string     `json:"code"`
	Type              string     `json:"type"`
	SourceContainerID *uuid.UUID `json:"source_container_id,omitempty"`
	DestContainerID   *uuid.UUID `json:"dest_container_id,omitempty"`
	UnitID            *uuid.UUID `json:"unit_id,omitempty"`
	FuelAmount        float64    `json:"fuel_amount"`
	UnitDistance      *float64   `json:"unit_distance,omitempty"`
	UnitHours         *float64   `json:"unit_hours,omitempty"`
	TransactionDate   time.Time  `json:"transaction_date"`
	Notes             string     `json:"notes,omitempty"`
	Approved          bool       `json:"approved"`
	CreatedBy         uuid.UUID  `json:"created_by"`
	ApprovedBy        *uuid.UUID `json:"approved_by,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}

func toTransactionResponse(t *domain.FuelTransaction) transactionResponse {
	return transactionResponse{
		ID:                t.ID,
		Code:              t.Code,
		Type:              string(t.Type),
		SourceContainerID: t.SourceContainerID,
		DestContainerID:   t.DestContainerID,
		UnitID:            t.UnitID,
		FuelAmount:        t.FuelAmount,
		UnitDistance:      t.UnitDistance,
		UnitHours:         t.UnitHours,
		TransactionDate:   t.TransactionDate,
		Notes:             t.Notes,
		Approved:          t.Approved,
		CreatedBy:         t.CreatedBy,
		ApprovedBy:        t.ApprovedBy,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		DeletedAt:         t.DeletedAt,
	}
}

type approvalResponse struct {
	ID              uuid.UUID                 `json:"id"`
	Code            string                    `json:"code"`
	TransactionID   uuid.UUID                 `json:"transaction_id"`
	Type            string                    `json:"type"`
	Status          string                    `json:"status"`
	Reason          string                    `json:"reason"`
	RequestedBy     uuid.UUID                 `json:"requested_by"`
	ApprovedBy      *uuid.UUID                `json:"approved_by,omitempty"`
	NewData         *domain.TransactionChange `json:"new_data,omitempty"`
	RejectionReason string                    `json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time                `json:"approved_at,omitempty"`
	UsedAt          *time.Time                `json:"used_at,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
}

func toApprovalResponse(r *domain.ApprovalRequest) approvalResponse {
	return approvalResponse{
		ID:              r.ID,
		Code:            r.Code,
		TransactionID:   r.TransactionID,
		Type:            string(r.Type),
		Status:          string(r.Status),
		Reason:          r.Reason,
		RequestedBy:     r.RequestedBy,
		ApprovedBy:      r.ApprovedBy,
		NewData:         r.NewData,
		RejectionReason: r.RejectionReason,
		ApprovedAt:      r.ApprovedAt,
		UsedAt:          r.UsedAt,
		CreatedAt:       r.CreatedAt,
	}
}

type correctionResponse struct {
	ID            uuid.UUID `json:"id"`
	ContainerID   uuid.UUID `json:"container_id"`
	PreviousLevel float64   `json:"previous_level"`
	NewLevel      float64   `json:"new_level"`
	Reason        string    `json:"reason"`
	CorrectedBy   uuid.UUID `json:"corrected_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCorrectionResponse(c *domain.CapacityCorrection) correctionResponse {
	return correctionResponse{
		ID:            c.ID,
		ContainerID:   c.ContainerID,
		PreviousLevel: c.PreviousLevel,
		NewLevel:      c.NewLevel,
		Reason:        c.Reason,
		CorrectedBy:   c.CorrectedBy,
		CreatedAt:     c.CreatedAt,
	}
}

type listResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

type consumptionResponse struct {
	UnitID      uuid.UUID `json:"unit_id"`
	PerDistance *float64  `json:"per_distance"`
	PerHour     *float64  `json:"per_hour"`
}

type capacityProjectionResponse = usecase.CapacityProjection
