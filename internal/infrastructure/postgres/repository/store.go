package repository

import (
	"context"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"gorm.io/gorm"
)

// GormStore exposes the repositories over one gorm handle. The handle is
// either the root connection or a transaction-scoped one, which is what
// makes multi-repository operations atomic.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Containers() domain.ContainerRepository {
	return &DefaultContainerRepository{db: s.db}
}

func (s *GormStore) Units() domain.UnitRepository {
	return &DefaultUnitRepository{db: s.db}
}

func (s *GormStore) Transactions() domain.TransactionRepository {
	return &DefaultTransactionRepository{db: s.db}
}

func (s *GormStore) Approvals() domain.ApprovalRepository {
	return &DefaultApprovalRepository{db: s.db}
}

func (s *GormStore) Corrections() domain.CorrectionRepository {
	return &DefaultCorrectionRepository{db: s.db}
}

type GormTxManager struct {
	db *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) WithTransaction(ctx context.Context, fn func(domain.Store) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

func (m *GormTxManager) Store() domain.Store {
	return NewGormStore(m.db)
}
