package domain

import (
	"time"

	"github.com/google/uuid"
)

// CapacityCorrection is a privileged manual override of a container
// level, recorded outside the transaction flow so ordinary edits can
// never silently desync the ledger.
type CapacityCorrection struct {
	ID            uuid.UUID
	ContainerID   uuid.UUID
	PreviousLevel float64
	NewLevel      float64
	Reason        string
	CorrectedBy   uuid.UUID
	CreatedAt     time.Time
}

type CorrectionRepository interface {
	CreateCorrection(correction *CapacityCorrection) error
	GetCorrectionsByContainer(containerID uuid.UUID, page, limit int64) ([]*CapacityCorrection, int64, error)
}
