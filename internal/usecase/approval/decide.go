package approval

import (
	"context"
	"fmt"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

// Decide resolves a pending request. Approval applies the deferred edit
// or delete through the Transaction Engine inside the same store
// transaction as the status change: if the deferred effect fails, the
// approval does not persist either.
func (w *DefaultWorkflow) Decide(ctx context.Context, requestID uuid.UUID, approver domain.Actor, decision domain.Decision, rejectionReason string) (*domain.ApprovalRequest, error) {
	if !approver.CanApprove() {
		return nil, domain.ErrForbidden
	}

	var decided *domain.ApprovalRequest
	var alerts []domain.ThresholdAlert

	err := w.txManager.WithTransaction(ctx, func(s domain.Store) error {
		request, err := s.Approvals().GetRequestForUpdate(requestID)
		if err != nil {
			return err
		}
		if !request.IsPending() {
			return domain.NewInvalidStateError(request.Status)
		}

		now := time.Now()
		approverID := approver.ID
		request.ApprovedBy = &approverID
		request.ApprovedAt = &now

		switch decision {
		case domain.DecisionApprove:
			request.Status = domain.RequestApproved
			raised, err := w.applyDeferredEffect(s, request, now)
			if err != nil {
				return err
			}
			alerts = raised
		case domain.DecisionReject:
			request.Status = domain.RequestRejected
			request.RejectionReason = rejectionReason
		default:
			return fmt.Errorf("unknown decision %q", decision)
		}

		if err := s.Approvals().UpdateRequest(request); err != nil {
			return err
		}
		decided = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.engine.PublishAlerts(alerts)
	w.publishEvent(decided, "request decided")
	if w.metrics != nil {
		w.metrics.RecordApprovalDecision(string(decided.Type), string(decided.Status))
	}
	return decided, nil
}

func (w *DefaultWorkflow) applyDeferredEffect(s domain.Store, request *domain.ApprovalRequest, now time.Time) ([]domain.ThresholdAlert, error) {
	trx, err := s.Transactions().GetTransactionForUpdate(request.TransactionID)
	if err != nil {
		return nil, err
	}

	switch request.Type {
	case domain.RequestEdit:
		if trx.IsDeleted() {
			return nil, domain.ErrTransactionDeleted
		}
		if request.NewData == nil {
			return nil, domain.ErrNewDataRequired
		}
		alerts, _, err := w.engine.ApplyChangeIn(s, trx, request.NewData)
		if err != nil {
			return nil, err
		}
		// The edit grant is consumed the moment the change lands.
		request.UsedAt = &now
		return alerts, nil

	case domain.RequestDelete:
		if trx.IsDeleted() {
			return nil, domain.ErrTransactionDeleted
		}
		alerts, err := w.engine.ReverseIn(s, trx)
		if err != nil {
			return nil, err
		}
		if err := s.Transactions().SoftDeleteTransaction(trx.ID); err != nil {
			return nil, err
		}
		return alerts, nil

	default:
		return nil, fmt.Errorf("unknown request type %q", request.Type)
	}
}
