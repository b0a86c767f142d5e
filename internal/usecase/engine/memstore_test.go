package engine

import (
	"context"
	"sort"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

// memStore is an in-memory domain.Store. Getters hand out copies and
// updates write copies back, mirroring how rows behave behind gorm.
type memStore struct {
	containers  map[uuid.UUID]domain.FuelContainer
	units       map[uuid.UUID]domain.FuelUnit
	trxs        map[uuid.UUID]domain.FuelTransaction
	requests    map[uuid.UUID]domain.ApprovalRequest
	corrections []domain.CapacityCorrection
}

func newMemStore() *memStore {
	return &memStore{
		containers: make(map[uuid.UUID]domain.FuelContainer),
		units:      make(map[uuid.UUID]domain.FuelUnit),
		trxs:       make(map[uuid.UUID]domain.FuelTransaction),
		requests:   make(map[uuid.UUID]domain.ApprovalRequest),
	}
}

func (m *memStore) clone() *memStore {
	next := newMemStore()
	for k, v := range m.containers {
		next.containers[k] = v
	}
	for k, v := range m.units {
		next.units[k] = v
	}
	for k, v := range m.trxs {
		next.trxs[k] = v
	}
	for k, v := range m.requests {
		next.requests[k] = v
	}
	next.corrections = append(next.corrections, m.corrections...)
	return next
}

func (m *memStore) Containers() domain.ContainerRepository   { return &memContainers{m} }
func (m *memStore) Units() domain.UnitRepository             { return &memUnits{m} }
func (m *memStore) Transactions() domain.TransactionRepository { return &memTransactions{m} }
func (m *memStore) Approvals() domain.ApprovalRepository     { return &memApprovals{m} }
func (m *memStore) Corrections() domain.CorrectionRepository { return &memCorrections{m} }

// memTxManager gives WithTransaction rollback semantics by restoring a
// snapshot when fn fails.
type memTxManager struct {
	store *memStore
}

func (t *memTxManager) WithTransaction(ctx context.Context, fn func(domain.Store) error) error {
	snapshot := t.store.clone()
	if err := fn(t.store); err != nil {
		*t.store = *snapshot
		return err
	}
	return nil
}

func (t *memTxManager) Store() domain.Store { return t.store }

type memContainers struct{ s *memStore }

func (r *memContainers) CreateContainer(container *domain.FuelContainer) error {
	r.s.containers[container.ID] = *container
	return nil
}

func (r *memContainers) GetContainerByID(containerID uuid.UUID) (*domain.FuelContainer, error) {
	container, ok := r.s.containers[containerID]
	if !ok {
		return nil, domain.ErrContainerNotFound
	}
	return &container, nil
}

func (r *memContainers) GetContainerForUpdate(containerID uuid.UUID) (*domain.FuelContainer, error) {
	return r.GetContainerByID(containerID)
}

func (r *memContainers) UpdateContainerLevel(containerID uuid.UUID, newLevel float64) error {
	container, ok := r.s.containers[containerID]
	if !ok {
		return domain.ErrContainerNotFound
	}
	container.CurrentCapacity = newLevel
	r.s.containers[containerID] = container
	return nil
}

func (r *memContainers) UpdateContainer(container *domain.FuelContainer) error {
	if _, ok := r.s.containers[container.ID]; !ok {
		return domain.ErrContainerNotFound
	}
	r.s.containers[container.ID] = *container
	return nil
}

func (r *memContainers) SoftDeleteContainer(containerID uuid.UUID) error {
	container, ok := r.s.containers[containerID]
	if !ok {
		return domain.ErrContainerNotFound
	}
	now := time.Now()
	container.DeletedAt = &now
	container.Active = false
	r.s.containers[containerID] = container
	return nil
}

func (r *memContainers) GetContainers(filters domain.ContainerFilters, page, limit int64) ([]*domain.FuelContainer, int64, error) {
	var out []*domain.FuelContainer
	for _, container := range r.s.containers {
		c := container
		out = append(out, &c)
	}
	return out, int64(len(out)), nil
}

type memUnits struct{ s *memStore }

func (r *memUnits) CreateUnit(unit *domain.FuelUnit) error {
	r.s.units[unit.ID] = *unit
	return nil
}

func (r *memUnits) GetUnitByID(unitID uuid.UUID) (*domain.FuelUnit, error) {
	unit, ok := r.s.units[unitID]
	if !ok {
		return nil, domain.ErrUnitNotFound
	}
	return &unit, nil
}

func (r *memUnits) GetUnitForUpdate(unitID uuid.UUID) (*domain.FuelUnit, error) {
	return r.GetUnitByID(unitID)
}

func (r *memUnits) UpdateUnit(unit *domain.FuelUnit) error {
	if _, ok := r.s.units[unit.ID]; !ok {
		return domain.ErrUnitNotFound
	}
	r.s.units[unit.ID] = *unit
	return nil
}

func (r *memUnits) UpdateUnitReadings(unitID uuid.UUID, distance, hours float64) error {
	unit, ok := r.s.units[unitID]
	if !ok {
		return domain.ErrUnitNotFound
	}
	unit.CurrentDistance = distance
	unit.CurrentHours = hours
	r.s.units[unitID] = unit
	return nil
}

func (r *memUnits) SoftDeleteUnit(unitID uuid.UUID) error {
	unit, ok := r.s.units[unitID]
	if !ok {
		return domain.ErrUnitNotFound
	}
	now := time.Now()
	unit.DeletedAt = &now
	unit.Active = false
	r.s.units[unitID] = unit
	return nil
}

func (r *memUnits) GetUnits(page, limit int64) ([]*domain.FuelUnit, int64, error) {
	var out []*domain.FuelUnit
	for _, unit := range r.s.units {
		u := unit
		out = append(out, &u)
	}
	return out, int64(len(out)), nil
}

type memTransactions struct{ s *memStore }

func (r *memTransactions) CreateTransaction(trx *domain.FuelTransaction) error {
	if trx.CreatedAt.IsZero() {
		trx.CreatedAt = time.Now()
	}
	r.s.trxs[trx.ID] = *trx
	return nil
}

func (r *memTransactions) GetTransactionByID(trxID uuid.UUID) (*domain.FuelTransaction, error) {
	trx, ok := r.s.trxs[trxID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return &trx, nil
}

func (r *memTransactions) GetTransactionForUpdate(trxID uuid.UUID) (*domain.FuelTransaction, error) {
	return r.GetTransactionByID(trxID)
}

func (r *memTransactions) UpdateTransaction(trx *domain.FuelTransaction) error {
	if _, ok := r.s.trxs[trx.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	r.s.trxs[trx.ID] = *trx
	return nil
}

func (r *memTransactions) SoftDeleteTransaction(trxID uuid.UUID) error {
	trx, ok := r.s.trxs[trxID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	now := time.Now()
	trx.DeletedAt = &now
	r.s.trxs[trxID] = trx
	return nil
}

func (r *memTransactions) RestoreTransaction(trxID uuid.UUID) error {
	trx, ok := r.s.trxs[trxID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	trx.DeletedAt = nil
	r.s.trxs[trxID] = trx
	return nil
}

func (r *memTransactions) GetTransactions(filters domain.TransactionFilters, page, limit int64) ([]*domain.FuelTransaction, int64, error) {
	var out []*domain.FuelTransaction
	for _, trx := range r.s.trxs {
		if trx.IsDeleted() != filters.Deleted {
			continue
		}
		t := trx
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TransactionDate.After(out[j].TransactionDate)
	})
	return out, int64(len(out)), nil
}

func (r *memTransactions) LatestUnitReadings(unitID uuid.UUID, limit int) ([]domain.UnitReadingPoint, error) {
	var points []domain.UnitReadingPoint
	for _, trx := range r.s.trxs {
		if trx.UnitID == nil || *trx.UnitID != unitID || trx.IsDeleted() {
			continue
		}
		points = append(points, domain.UnitReadingPoint{
			TransactionID:   trx.ID,
			FuelAmount:      trx.FuelAmount,
			UnitDistance:    trx.UnitDistance,
			UnitHours:       trx.UnitHours,
			TransactionDate: trx.TransactionDate,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].TransactionDate.After(points[j].TransactionDate)
	})
	if len(points) > limit {
		points = points[:limit]
	}
	return points, nil
}

type memApprovals struct{ s *memStore }

func (r *memApprovals) CreateRequest(request *domain.ApprovalRequest) error {
	r.s.requests[request.ID] = *request
	return nil
}

func (r *memApprovals) GetRequestByID(requestID uuid.UUID) (*domain.ApprovalRequest, error) {
	request, ok := r.s.requests[requestID]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &request, nil
}

func (r *memApprovals) GetRequestForUpdate(requestID uuid.UUID) (*domain.ApprovalRequest, error) {
	return r.GetRequestByID(requestID)
}

func (r *memApprovals) UpdateRequest(request *domain.ApprovalRequest) error {
	if _, ok := r.s.requests[request.ID]; !ok {
		return domain.ErrRequestNotFound
	}
	r.s.requests[request.ID] = *request
	return nil
}

func (r *memApprovals) GetRequests(filters domain.ApprovalFilters, page, limit int64) ([]*domain.ApprovalRequest, int64, error) {
	var out []*domain.ApprovalRequest
	for _, request := range r.s.requests {
		if filters.Status != "" && request.Status != filters.Status {
			continue
		}
		req := request
		out = append(out, &req)
	}
	return out, int64(len(out)), nil
}

type memCorrections struct{ s *memStore }

func (r *memCorrections) CreateCorrection(correction *domain.CapacityCorrection) error {
	r.s.corrections = append(r.s.corrections, *correction)
	return nil
}

func (r *memCorrections) GetCorrectionsByContainer(containerID uuid.UUID, page, limit int64) ([]*domain.CapacityCorrection, int64, error) {
	var out []*domain.CapacityCorrection
	for _, correction := range r.s.corrections {
		if correction.ContainerID != containerID {
			continue
		}
		c := correction
		out = append(out, &c)
	}
	return out, int64(len(out)), nil
}
