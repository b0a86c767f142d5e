package approval

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

func (w *DefaultWorkflow) GetRequestByID(ctx context.Context, requestID uuid.UUID) (*domain.ApprovalRequest, error) {
	return w.txManager.Store().Approvals().GetRequestByID(requestID)
}

func (w *DefaultWorkflow) GetRequests(ctx context.Context, filters domain.ApprovalFilters, page, limit int64) ([]*domain.ApprovalRequest, int64, error) {
	return w.txManager.Store().Approvals().GetRequests(filters, page, limit)
}

// ApprovalEvent is the message shape published on request lifecycle
// changes.
type ApprovalEvent struct {
	RequestID     string `json:"request_id"`
	RequestCode   string `json:"request_code"`
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Stage         string `json:"stage"`
}

func (w *DefaultWorkflow) publishEvent(request *domain.ApprovalRequest, stage string) {
	if w.publisher == nil || request == nil {
		return
	}
	go func(event ApprovalEvent) {
		value, err := json.Marshal(event)
		if err != nil {
			slog.Error("failed to marshal approval event", "request", event.RequestCode, "error", err.Error())
			return
		}
		msg := domain.Message{Key: []byte(event.TransactionID), Value: value}
		if err := w.publisher.Publish(w.eventTopic, msg); err != nil {
			slog.Error("failed to publish approval event", "request", event.RequestCode, "stage", stage, "error", err.Error())
		}
	}(ApprovalEvent{
		RequestID:     request.ID.String(),
		RequestCode:   request.Code,
		TransactionID: request.TransactionID.String(),
		Type:          string(request.Type),
		Status:        string(request.Status),
		Stage:         stage,
	})
}
