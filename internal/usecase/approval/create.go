package approval

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

type CreateRequestInput struct {
	TransactionID uuid.UUID
	Type          domain.RequestType
	Reason        string
	RequestedBy   domain.Actor
	// NewData carries the proposed post-image for edit requests. It is
	// stored as supplied; business validation is deferred to application
	// time.
	NewData *domain.TransactionChange
}

// CreateRequest snapshots the target transaction and opens a pending
// request.
func (w *DefaultWorkflow) CreateRequest(ctx context.Context, input *CreateRequestInput) (*domain.ApprovalRequest, error) {
	if strings.TrimSpace(input.Reason) == "" {
		return nil, domain.ErrReasonRequired
	}
	if input.Type == domain.RequestEdit && input.NewData == nil {
		return nil, domain.ErrNewDataRequired
	}

	trx, err := w.txManager.Store().Transactions().GetTransactionByID(input.TransactionID)
	if err != nil {
		return nil, err
	}
	if trx.IsDeleted() {
		return nil, domain.ErrTransactionDeleted
	}

	snapshot, err := json.Marshal(trx)
	if err != nil {
		return nil, fmt.Errorf("snapshotting transaction %s: %w", trx.Code, err)
	}

	request := &domain.ApprovalRequest{
		ID:            uuid.New(),
		Code:          w.newCode(),
		TransactionID: trx.ID,
		Type:          input.Type,
		Status:        domain.RequestPending,
		Reason:        input.Reason,
		RequestedBy:   input.RequestedBy.ID,
		OriginalData:  snapshot,
		NewData:       input.NewData,
		CreatedAt:     time.Now(),
	}

	if err := w.txManager.Store().Approvals().CreateRequest(request); err != nil {
		return nil, err
	}

	w.publishEvent(request, "request opened")
	if w.metrics != nil {
		w.metrics.RecordApprovalRequest(string(request.Type))
	}
	return request, nil
}
