package domain

import "context"

// Store bundles the repositories for one persistence scope. Inside
// TxManager.WithTransaction every repository sees the same database
// transaction, so multi-container mutations commit together or not at
// all.
type Store interface {
	Containers() ContainerRepository
	Units() UnitRepository
	Transactions() TransactionRepository
	Approvals() ApprovalRepository
	Corrections() CorrectionRepository
}

type TxManager interface {
	// WithTransaction runs fn against a transaction-scoped Store and
	// commits only if fn returns nil.
	WithTransaction(ctx context.Context, fn func(Store) error) error
	// Store returns the non-transactional scope for reads.
	Store() Store
}
