package approval

import (
	"context"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/metrics"
	"github.com/altynmine/fuel-inventory-service/internal/usecase/engine"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// Workflow gates out-of-window transaction mutations behind manager
// approval. Approving a request applies the deferred effect through the
// Transaction Engine in the same store transaction as the status flip.
type Workflow interface {
	CreateRequest(ctx context.Context, input *CreateRequestInput) (*domain.ApprovalRequest, error)
	Decide(ctx context.Context, requestID uuid.UUID, approver domain.Actor, decision domain.Decision, rejectionReason string) (*domain.ApprovalRequest, error)
	Cancel(ctx context.Context, requestID uuid.UUID, requester domain.Actor, now time.Time) (*domain.ApprovalRequest, error)
	GetRequestByID(ctx context.Context, requestID uuid.UUID) (*domain.ApprovalRequest, error)
	GetRequests(ctx context.Context, filters domain.ApprovalFilters, page, limit int64) ([]*domain.ApprovalRequest, int64, error)
}

type DefaultWorkflow struct {
	txManager  domain.TxManager
	engine     engine.Engine
	publisher  domain.PublisherPort
	eventTopic string
	metrics    *metrics.FuelMetrics
	newCode    func() string
}

func NewDefaultWorkflow(
	txManager domain.TxManager,
	fuelEngine engine.Engine,
	publisher domain.PublisherPort,
	eventTopic string,
	fuelMetrics *metrics.FuelMetrics,
) *DefaultWorkflow {
	codeGenerator, err := nanoid.CustomASCII("0123456789ABCDEFGHJKMNPQRSTVWXYZ", 10)
	if err != nil {
		panic(err)
	}
	return &DefaultWorkflow{
		txManager:  txManager,
		engine:     fuelEngine,
		publisher:  publisher,
		eventTopic: eventTopic,
		metrics:    fuelMetrics,
		newCode:    codeGenerator,
	}
}
