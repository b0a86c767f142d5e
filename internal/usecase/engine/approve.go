package engine

import (
	"context"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

// ApproveTransaction marks a transaction as reviewed by a manager. No
// ledger effects: the fuel already moved when the record was created.
func (e *DefaultEngine) ApproveTransaction(ctx context.Context, trxID uuid.UUID, approver domain.Actor) error {
	if !approver.CanApprove() {
		return domain.ErrForbidden
	}
	return e.txManager.WithTransaction(ctx, func(s domain.Store) error {
		trx, err := s.Transactions().GetTransactionForUpdate(trxID)
		if err != nil {
			return err
		}
		if trx.IsDeleted() {
			return domain.ErrTransactionDeleted
		}
		if trx.Approved {
			return nil
		}
		trx.Approved = true
		approverID := approver.ID
		trx.ApprovedBy = &approverID
		return s.Transactions().UpdateTransaction(trx)
	})
}
