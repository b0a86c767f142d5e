package domain

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
)

type RequestType string

const (
	RequestEdit   RequestType = "EDIT"
	RequestDelete RequestType = "DELETE"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// CancelGracePeriod is how long a requester may withdraw their own
// pending request. It matches the free-edit window on transactions.
const CancelGracePeriod = 24 * time.Hour

// CancelledByRequesterReason is the fixed rejection reason recorded on
// self-cancel.
const CancelledByRequesterReason = "cancelled by requester"

// ApprovalRequest gates an edit or delete of a transaction outside the
// free-edit window. OriginalData snapshots the transaction at request
// time; NewData carries the proposed post-image for edits.
type ApprovalRequest struct {
	ID              uuid.UUID
	Code            string
	TransactionID   uuid.UUID
	Type            RequestType
	Status          RequestStatus
	Reason          string
	RequestedBy     uuid.UUID
	ApprovedBy      *uuid.UUID
	OriginalData    datatypes.JSON
	NewData         *TransactionChange
	RejectionReason string
	ApprovedAt      *time.Time
	UsedAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *ApprovalRequest) IsPending() bool {
	return r.Status == RequestPending
}

// CancellableBy reports whether the actor may still withdraw the request.
func (r *ApprovalRequest) CancellableBy(actorID uuid.UUID, now time.Time) bool {
	if r.RequestedBy != actorID {
		return false
	}
	if !r.IsPending() {
		return false
	}
	return now.Sub(r.CreatedAt) <= CancelGracePeriod
}

type ApprovalFilters struct {
	TransactionID *uuid.UUID
	Status        RequestStatus
	Type          RequestType
	RequestedBy   *uuid.UUID
}

type ApprovalRepository interface {
	CreateRequest(request *ApprovalRequest) error
	GetRequestByID(requestID uuid.UUID) (*ApprovalRequest, error)
	GetRequestForUpdate(requestID uuid.UUID) (*ApprovalRequest, error)
	UpdateRequest(request *ApprovalRequest) error
	GetRequests(filters ApprovalFilters, page, limit int64) ([]*ApprovalRequest, int64, error)
}
