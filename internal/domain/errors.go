package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrContainerNotFound   = errors.New("fuel container not found")
	ErrUnitNotFound        = errors.New("fuel unit not found")
	ErrTransactionNotFound = errors.New("fuel transaction not found")
	ErrRequestNotFound     = errors.New("approval request not found")
	ErrTransactionDeleted  = errors.New("fuel transaction is deleted")
	ErrNotDeleted          = errors.New("fuel transaction is not deleted")
	ErrApprovalRequired    = errors.New("mutation requires manager approval")
	ErrForbidden           = errors.New("actor is not allowed to perform this operation")
	ErrReasonRequired      = errors.New("a reason is required for approval requests")
	ErrNewDataRequired     = errors.New("edit requests must carry the proposed changes")
)

// CapacityError reports a proposed level outside [0, max]. The mutation
// that produced it must not commit, in full.
type CapacityError struct {
	ContainerID   uuid.UUID
	ContainerCode string
	Current       float64
	Max           float64
	Attempted     float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity out of bounds on container %s: attempted %.2f, allowed [0, %.2f]",
		e.ContainerCode, e.Attempted, e.Max)
}

// Violation is one broken validation rule on a transaction intent.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule, not just the first.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return "transaction validation failed: " + strings.Join(msgs, "; ")
}

// WorkflowError blocks an approval-request transition.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string { return e.Message }

const (
	WorkflowInvalidState   = "INVALID_STATE"
	WorkflowNotCancellable = "NOT_CANCELLABLE"
)

func NewInvalidStateError(status RequestStatus) *WorkflowError {
	return &WorkflowError{
		Code:    WorkflowInvalidState,
		Message: fmt.Sprintf("approval request is not pending (status: %s)", status),
	}
}

func NewNotCancellableError(reason string) *WorkflowError {
	return &WorkflowError{
		Code:    WorkflowNotCancellable,
		Message: "approval request cannot be cancelled: " + reason,
	}
}
