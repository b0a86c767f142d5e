package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
)

type errorResponse struct {
	Error      string             `json:"error"`
	Code       string             `json:"code,omitempty"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses. Validation failures
// carry the full violation list so clients can fix everything at once.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      "validation failed",
			Code:       "VALIDATION_FAILED",
			Violations: validationErr.Violations,
		})
		return
	}

	var capacityErr *domain.CapacityError
	if errors.As(err, &capacityErr) {
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: capacityErr.Error(),
			Code:  "CAPACITY_OUT_OF_BOUNDS",
		})
		return
	}

	var workflowErr *domain.WorkflowError
	if errors.As(err, &workflowErr) {
		status := http.StatusConflict
		if workflowErr.Code == domain.WorkflowNotCancellable {
			status = http.StatusForbidden
		}
		writeJSON(w, status, errorResponse{Error: workflowErr.Message, Code: workflowErr.Code})
		return
	}

	switch {
	case errors.Is(err, domain.ErrContainerNotFound),
		errors.Is(err, domain.ErrUnitNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error(), Code: "FORBIDDEN"})
	case errors.Is(err, domain.ErrApprovalRequired):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "APPROVAL_REQUIRED"})
	case errors.Is(err, domain.ErrTransactionDeleted),
		errors.Is(err, domain.ErrNotDeleted):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "CONFLICT"})
	case errors.Is(err, domain.ErrReasonRequired),
		errors.Is(err, domain.ErrNewDataRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "BAD_REQUEST"})
	default:
		slog.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "INTERNAL"})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Code: "BAD_REQUEST"})
}
