package engine

import (
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
)

// FreeEditWindow is how long after creation a transaction stays editable
// without manager approval.
const FreeEditWindow = 24 * time.Hour

// CanBeEdited reports whether a transaction may be mutated directly.
// Approved transactions stay editable regardless of age; this mirrors
// the historical behaviour and is under product review.
func (e *DefaultEngine) CanBeEdited(trx *domain.FuelTransaction, now time.Time) bool {
	if trx.Approved {
		return true
	}
	return now.Sub(trx.CreatedAt) <= FreeEditWindow
}

// RequiresApprovalForEdit is true only for unapproved transactions past
// the free-edit window.
func (e *DefaultEngine) RequiresApprovalForEdit(trx *domain.FuelTransaction, now time.Time) bool {
	return !e.CanBeEdited(trx, now)
}
