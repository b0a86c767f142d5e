package approval

import (
	"context"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

// Cancel lets the original requester withdraw their own pending request
// within the grace window. A cancel is recorded as a rejection with a
// fixed reason.
func (w *DefaultWorkflow) Cancel(ctx context.Context, requestID uuid.UUID, requester domain.Actor, now time.Time) (*domain.ApprovalRequest, error) {
	var cancelled *domain.ApprovalRequest

	err := w.txManager.WithTransaction(ctx, func(s domain.Store) error {
		request, err := s.Approvals().GetRequestForUpdate(requestID)
		if err != nil {
			return err
		}

		switch {
		case request.RequestedBy != requester.ID:
			return domain.NewNotCancellableError("only the requester may cancel")
		case !request.IsPending():
			return domain.NewNotCancellableError("request is no longer pending")
		case now.Sub(request.CreatedAt) > domain.CancelGracePeriod:
			return domain.NewNotCancellableError("the cancellation window has passed")
		}

		// ApprovedBy/ApprovedAt stay nil: nobody decided this request,
		// the requester withdrew it. RequestedBy plus the fixed reason
		// identify the canceller.
		request.Status = domain.RequestRejected
		request.RejectionReason = domain.CancelledByRequesterReason

		if err := s.Approvals().UpdateRequest(request); err != nil {
			return err
		}
		cancelled = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.publishEvent(cancelled, "request cancelled")
	if w.metrics != nil {
		w.metrics.RecordApprovalDecision(string(cancelled.Type), "CANCELLED")
	}
	return cancelled, nil
}
