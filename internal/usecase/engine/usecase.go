package engine

import (
	"context"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type ApplyMode string

const (
	ModeCreate  ApplyMode = "CREATE"
	ModeRestore ApplyMode = "RESTORE"
)

// Engine validates fuel movements and is the only call path that touches
// ledger state. Persistence never triggers ledger mutations on its own.
type Engine interface {
	Validate(ctx context.Context, trx *domain.FuelTransaction) []domain.Violation
	Create(ctx context.Context, input *CreateTransactionInput) (*domain.FuelTransaction, error)
	Apply(ctx context.Context, trx *domain.FuelTransaction, mode ApplyMode) error
	Reverse(ctx context.Context, trx *domain.FuelTransaction) error
	AdjustForAmountChange(ctx context.Context, trx *domain.FuelTransaction, oldAmount, newAmount float64) error
	Update(ctx context.Context, trxID uuid.UUID, change *domain.TransactionChange, actor domain.Actor, now time.Time) (*domain.FuelTransaction, error)
	Delete(ctx context.Context, trxID uuid.UUID, actor domain.Actor, now time.Time) error
	Restore(ctx context.Context, trxID uuid.UUID, actor domain.Actor) (*domain.FuelTransaction, error)
	ApproveTransaction(ctx context.Context, trxID uuid.UUID, approver domain.Actor) error

	// Store-scoped primitives for callers that need engine effects inside
	// their own transaction boundary (the approval workflow). Returned
	// alerts must be published by the caller after a successful commit.
	ApplyIn(s domain.Store, trx *domain.FuelTransaction, mode ApplyMode) ([]domain.ThresholdAlert, error)
	ReverseIn(s domain.Store, trx *domain.FuelTransaction) ([]domain.ThresholdAlert, error)
	ApplyChangeIn(s domain.Store, trx *domain.FuelTransaction, change *domain.TransactionChange) ([]domain.ThresholdAlert, *domain.FuelTransaction, error)
	AdjustIn(s domain.Store, trx *domain.FuelTransaction, oldAmount, newAmount float64) ([]domain.ThresholdAlert, error)
	ValidateIn(s domain.Store, trx *domain.FuelTransaction) []domain.Violation
	PublishAlerts(alerts []domain.ThresholdAlert)

	CanBeEdited(trx *domain.FuelTransaction, now time.Time) bool
	RequiresApprovalForEdit(trx *domain.FuelTransaction, now time.Time) bool

	GetTransactionByID(ctx context.Context, trxID uuid.UUID) (*domain.FuelTransaction, error)
	GetTransactions(ctx context.Context, filters domain.TransactionFilters, page, limit int64) ([]*domain.FuelTransaction, int64, error)
	ConsumptionPerDistance(ctx context.Context, unitID uuid.UUID) (*float64, error)
	ConsumptionPerHour(ctx context.Context, unitID uuid.UUID) (*float64, error)
}

type DefaultEngine struct {
	txManager  domain.TxManager
	publisher  domain.PublisherPort
	alertTopic string
	metrics    *metrics.FuelMetrics
	newCode    func() string
}

func NewDefaultEngine(
	txManager domain.TxManager,
	publisher domain.PublisherPort,
	alertTopic string,
	fuelMetrics *metrics.FuelMetrics,
) *DefaultEngine {
	codeGenerator, err := nanoid.CustomASCII("0123456789ABCDEFGHJKMNPQRSTVWXYZ", 12)
	if err != nil {
		panic(err)
	}
	return &DefaultEngine{
		txManager:  txManager,
		publisher:  publisher,
		alertTopic: alertTopic,
		metrics:    fuelMetrics,
		newCode:    codeGenerator,
	}
}
