package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() (*DefaultEngine, *memStore) {
	store := newMemStore()
	e := NewDefaultEngine(&memTxManager{store: store}, nil, "", nil)
	return e, store
}

func seedContainer(store *memStore, kind domain.ContainerKind, level, max, threshold float64) *domain.FuelContainer {
	container := domain.FuelContainer{
		ID:              uuid.New(),
		Code:            "C-" + uuid.NewString()[:8],
		Kind:            kind,
		MaxCapacity:     max,
		CurrentCapacity: level,
		MinThreshold:    threshold,
		Active:          true,
		CreatedAt:       time.Now(),
	}
	store.containers[container.ID] = container
	return &container
}

func seedUnit(store *memStore, distance, hours float64) *domain.FuelUnit {
	unit := domain.FuelUnit{
		ID:              uuid.New(),
		Code:            "U-" + uuid.NewString()[:8],
		CurrentDistance: distance,
		CurrentHours:    hours,
		Active:          true,
		CreatedAt:       time.Now(),
	}
	store.units[unit.ID] = unit
	return &unit
}

func operator() domain.Actor {
	return domain.Actor{ID: uuid.New(), Roles: []domain.Role{domain.RoleOperator}}
}

func manager() domain.Actor {
	return domain.Actor{ID: uuid.New(), Roles: []domain.Role{domain.RoleManager}}
}

func fptr(v float64) *float64 { return &v }

func TestCreateVendorDelivery(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 5000, 10000, 2000)

	trx, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:            domain.VendorToStorage,
		DestContainerID: &storage.ID,
		FuelAmount:      2000,
		CreatedBy:       operator().ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, trx.Code)
	assert.False(t, trx.TransactionDate.IsZero())

	assert.Equal(t, 7000.0, store.containers[storage.ID].CurrentCapacity)
	_, ok := store.trxs[trx.ID]
	assert.True(t, ok)
}

func TestCreateTransferMovesBothContainers(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 8000, 10000, 2000)
	truck := seedContainer(store, domain.KindTruck, 100, 3000, 300)

	_, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToTruck,
		SourceContainerID: &storage.ID,
		DestContainerID:   &truck.ID,
		FuelAmount:        1500,
		CreatedBy:         operator().ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 6500.0, store.containers[storage.ID].CurrentCapacity)
	assert.Equal(t, 1600.0, store.containers[truck.ID].CurrentCapacity)
}

func TestCreateOverfillLeavesBothUnchanged(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 8000, 10000, 2000)
	truck := seedContainer(store, domain.KindTruck, 2800, 3000, 300)

	_, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToTruck,
		SourceContainerID: &storage.ID,
		DestContainerID:   &truck.ID,
		FuelAmount:        500,
		CreatedBy:         operator().ID,
	})
	require.Error(t, err)

	var capacityErr *domain.CapacityError
	require.True(t, errors.As(err, &capacityErr))
	assert.Equal(t, 3300.0, capacityErr.Attempted)

	// The whole mutation rolls back, including the source decrement and
	// the transaction record.
	assert.Equal(t, 8000.0, store.containers[storage.ID].CurrentCapacity)
	assert.Equal(t, 2800.0, store.containers[truck.ID].CurrentCapacity)
	assert.Empty(t, store.trxs)
}

func TestCreateCollectsEveryViolation(t *testing.T) {
	e, store := newTestEngine()
	unit := seedUnit(store, 0, 0)

	_, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:       domain.StorageToTruck,
		UnitID:     &unit.ID,
		FuelAmount: -5,
		CreatedBy:  operator().ID,
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))

	codes := make(map[string]bool)
	for _, v := range validationErr.Violations {
		codes[v.Code] = true
	}
	assert.True(t, codes[CodeMissingReference], "missing source and dest")
	assert.True(t, codes[CodeForbiddenRef], "unit must not be set")
	assert.True(t, codes[CodeNonPositiveAmount])
}

func TestCreateInsufficientFuel(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 400, 10000, 2000)
	unit := seedUnit(store, 0, 0)

	_, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        600,
		CreatedBy:         operator().ID,
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, CodeInsufficientFuel, validationErr.Violations[0].Code)
}

func TestCreateWrongContainerKind(t *testing.T) {
	e, store := newTestEngine()
	truck := seedContainer(store, domain.KindTruck, 2000, 3000, 300)
	unit := seedUnit(store, 0, 0)

	_, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToUnit,
		SourceContainerID: &truck.ID,
		UnitID:            &unit.ID,
		FuelAmount:        100,
		CreatedBy:         operator().ID,
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, CodeWrongKind, validationErr.Violations[0].Code)
}

func TestCreateRejectsRegressedReadings(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 5000, 10000, 1000)
	unit := seedUnit(store, 5000, 320)

	_, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        200,
		UnitDistance:      fptr(4900),
		CreatedBy:         operator().ID,
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, CodeReadingRegressed, validationErr.Violations[0].Code)
}

func TestCreateAdvancesUnitReadings(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 5000, 10000, 1000)
	unit := seedUnit(store, 5000, 320)

	_, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        200,
		UnitDistance:      fptr(5150),
		UnitHours:         fptr(328),
		CreatedBy:         operator().ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 5150.0, store.units[unit.ID].CurrentDistance)
	assert.Equal(t, 328.0, store.units[unit.ID].CurrentHours)
}

func TestApplyInReportsThresholdCrossing(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 1500, 10000, 1000)
	unit := seedUnit(store, 0, 0)

	trx := &domain.FuelTransaction{
		ID:                uuid.New(),
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        600,
	}

	alerts, err := e.ApplyIn(store, trx, ModeCreate)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.SeverityWarning, alerts[0].Severity)
	assert.Equal(t, 900.0, alerts[0].Level)
	assert.Equal(t, 900.0, store.containers[storage.ID].CurrentCapacity)
}

func TestApplyInEscalatesToCritical(t *testing.T) {
	e, store := newTestEngine()
	// 550/10000 is already below threshold but not yet critical;
	// draining to 400 crosses the 5% mark.
	storage := seedContainer(store, domain.KindStorage, 550, 10000, 1000)
	unit := seedUnit(store, 0, 0)

	trx := &domain.FuelTransaction{
		ID:                uuid.New(),
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        150,
	}

	alerts, err := e.ApplyIn(store, trx, ModeCreate)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
}

func TestApplyInNoAlertWhileStillBelow(t *testing.T) {
	e, store := newTestEngine()
	// Already below threshold and not newly critical: no repeat alert.
	storage := seedContainer(store, domain.KindStorage, 900, 10000, 1000)
	unit := seedUnit(store, 0, 0)

	trx := &domain.FuelTransaction{
		ID:                uuid.New(),
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        100,
	}

	alerts, err := e.ApplyIn(store, trx, ModeCreate)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDeleteReversesAndSoftDeletes(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 1500, 10000, 1000)
	unit := seedUnit(store, 0, 0)

	trx, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        600,
		CreatedBy:         operator().ID,
	})
	require.NoError(t, err)
	require.Equal(t, 900.0, store.containers[storage.ID].CurrentCapacity)

	err = e.Delete(context.Background(), trx.ID, manager(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1500.0, store.containers[storage.ID].CurrentCapacity)
	assert.NotNil(t, store.trxs[trx.ID].DeletedAt)
}

func TestDeleteOutsideWindowNeedsApproval(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 1500, 10000, 1000)

	trx := domain.FuelTransaction{
		ID:                uuid.New(),
		Code:              "OLD",
		Type:              domain.VendorToStorage,
		DestContainerID:   &storage.ID,
		FuelAmount:        100,
		CreatedAt:         time.Now().Add(-25 * time.Hour),
	}
	store.trxs[trx.ID] = trx

	err := e.Delete(context.Background(), trx.ID, operator(), time.Now())
	assert.ErrorIs(t, err, domain.ErrApprovalRequired)
	assert.Nil(t, store.trxs[trx.ID].DeletedAt)
}

func TestRestoreReplaysEffects(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 1500, 10000, 1000)
	unit := seedUnit(store, 0, 0)

	trx, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        600,
		CreatedBy:         operator().ID,
	})
	require.NoError(t, err)
	require.NoError(t, e.Delete(context.Background(), trx.ID, manager(), time.Now()))
	require.Equal(t, 1500.0, store.containers[storage.ID].CurrentCapacity)

	restored, err := e.Restore(context.Background(), trx.ID, manager())
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)
	assert.Equal(t, 900.0, store.containers[storage.ID].CurrentCapacity)
}

func TestRestoreDemandsManagerAndDeletedState(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 1500, 10000, 1000)

	trx, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:            domain.VendorToStorage,
		DestContainerID: &storage.ID,
		FuelAmount:      100,
		CreatedBy:       operator().ID,
	})
	require.NoError(t, err)

	_, err = e.Restore(context.Background(), trx.ID, operator())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.Restore(context.Background(), trx.ID, manager())
	assert.ErrorIs(t, err, domain.ErrNotDeleted)
}

func TestUpdateAmountAdjustsLedgerByDelta(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 8000, 10000, 2000)
	truck := seedContainer(store, domain.KindTruck, 100, 3000, 300)

	trx, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToTruck,
		SourceContainerID: &storage.ID,
		DestContainerID:   &truck.ID,
		FuelAmount:        1000,
		CreatedBy:         operator().ID,
	})
	require.NoError(t, err)

	updated, err := e.Update(context.Background(), trx.ID, &domain.TransactionChange{
		FuelAmount: fptr(1200),
	}, operator(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1200.0, updated.FuelAmount)
	assert.Equal(t, 6800.0, store.containers[storage.ID].CurrentCapacity)
	assert.Equal(t, 1300.0, store.containers[truck.ID].CurrentCapacity)

	// Editing back to the original amount restores the original levels.
	_, err = e.Update(context.Background(), trx.ID, &domain.TransactionChange{
		FuelAmount: fptr(1000),
	}, operator(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 7000.0, store.containers[storage.ID].CurrentCapacity)
	assert.Equal(t, 1100.0, store.containers[truck.ID].CurrentCapacity)
}

func TestUpdateRejectsRepointedReferences(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 8000, 10000, 2000)
	truck := seedContainer(store, domain.KindTruck, 500, 3000, 300)
	unit := seedUnit(store, 0, 0)

	trx, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        200,
		CreatedBy:         operator().ID,
	})
	require.NoError(t, err)

	// An edit may not repoint the source at a wrong-kind container.
	_, err = e.Update(context.Background(), trx.ID, &domain.TransactionChange{
		SourceContainerID: &truck.ID,
	}, operator(), time.Now())
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, CodeWrongKind, validationErr.Violations[0].Code)
	assert.Equal(t, "source_container_id", validationErr.Violations[0].Field)

	// Nor at a container that does not exist.
	ghost := uuid.New()
	_, err = e.Update(context.Background(), trx.ID, &domain.TransactionChange{
		SourceContainerID: &ghost,
	}, operator(), time.Now())
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, CodeNotFound, validationErr.Violations[0].Code)

	// The rejected edits left the stored reference alone.
	assert.Equal(t, storage.ID, *store.trxs[trx.ID].SourceContainerID)
	assert.Equal(t, 7800.0, store.containers[storage.ID].CurrentCapacity)
}

func TestUpdateDeltaCanExceedSourceLevel(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 1000, 10000, 500)
	unit := seedUnit(store, 0, 0)

	trx, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        900,
		CreatedBy:         operator().ID,
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, store.containers[storage.ID].CurrentCapacity)

	// The full new amount exceeds what the container holds now, but the
	// delta of 50 is fine: only the delta hits the ledger.
	_, err = e.Update(context.Background(), trx.ID, &domain.TransactionChange{
		FuelAmount: fptr(950),
	}, operator(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 50.0, store.containers[storage.ID].CurrentCapacity)
}

func TestUpdateOutsideWindow(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 1500, 10000, 1000)

	trx := domain.FuelTransaction{
		ID:              uuid.New(),
		Code:            "OLD",
		Type:            domain.VendorToStorage,
		DestContainerID: &storage.ID,
		FuelAmount:      100,
		CreatedAt:       time.Now().Add(-25 * time.Hour),
	}
	store.trxs[trx.ID] = trx

	_, err := e.Update(context.Background(), trx.ID, &domain.TransactionChange{
		Notes: func() *string { s := "late note"; return &s }(),
	}, operator(), time.Now())
	assert.ErrorIs(t, err, domain.ErrApprovalRequired)

	// A manager bypasses the window.
	updated, err := e.Update(context.Background(), trx.ID, &domain.TransactionChange{
		Notes: func() *string { s := "late note"; return &s }(),
	}, manager(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "late note", updated.Notes)
}

func TestEditPolicyWindow(t *testing.T) {
	e, _ := newTestEngine()
	now := time.Now()

	fresh := &domain.FuelTransaction{CreatedAt: now.Add(-23 * time.Hour)}
	stale := &domain.FuelTransaction{CreatedAt: now.Add(-25 * time.Hour)}
	approvedStale := &domain.FuelTransaction{CreatedAt: now.Add(-400 * time.Hour), Approved: true}

	assert.True(t, e.CanBeEdited(fresh, now))
	assert.False(t, e.CanBeEdited(stale, now))
	assert.True(t, e.CanBeEdited(approvedStale, now))
	assert.True(t, e.RequiresApprovalForEdit(stale, now))
}

func TestApproveTransaction(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 1500, 10000, 1000)

	trx, err := e.Create(context.Background(), &CreateTransactionInput{
		Type:            domain.VendorToStorage,
		DestContainerID: &storage.ID,
		FuelAmount:      100,
		CreatedBy:       operator().ID,
	})
	require.NoError(t, err)

	err = e.ApproveTransaction(context.Background(), trx.ID, operator())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	boss := manager()
	require.NoError(t, e.ApproveTransaction(context.Background(), trx.ID, boss))
	stored := store.trxs[trx.ID]
	assert.True(t, stored.Approved)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, boss.ID, *stored.ApprovedBy)
}

func TestConsumptionEstimates(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 5000, 10000, 1000)
	unit := seedUnit(store, 0, 0)

	base := time.Now().Add(-48 * time.Hour)
	first := domain.FuelTransaction{
		ID:                uuid.New(),
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        80,
		UnitDistance:      fptr(1000),
		UnitHours:         fptr(100),
		TransactionDate:   base,
	}
	second := domain.FuelTransaction{
		ID:                uuid.New(),
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        50,
		UnitDistance:      fptr(1100),
		UnitHours:         fptr(110),
		TransactionDate:   base.Add(24 * time.Hour),
	}
	store.trxs[first.ID] = first
	store.trxs[second.ID] = second

	perDistance, err := e.ConsumptionPerDistance(context.Background(), unit.ID)
	require.NoError(t, err)
	require.NotNil(t, perDistance)
	assert.InDelta(t, 0.5, *perDistance, 1e-9)

	perHour, err := e.ConsumptionPerHour(context.Background(), unit.ID)
	require.NoError(t, err)
	require.NotNil(t, perHour)
	assert.InDelta(t, 5.0, *perHour, 1e-9)
}

func TestConsumptionNilWithoutUsablePair(t *testing.T) {
	e, store := newTestEngine()
	storage := seedContainer(store, domain.KindStorage, 5000, 10000, 1000)
	unit := seedUnit(store, 0, 0)

	// Single refuelling: no pair to difference.
	only := domain.FuelTransaction{
		ID:                uuid.New(),
		Type:              domain.StorageToUnit,
		SourceContainerID: &storage.ID,
		UnitID:            &unit.ID,
		FuelAmount:        80,
		UnitDistance:      fptr(1000),
		TransactionDate:   time.Now(),
	}
	store.trxs[only.ID] = only

	estimate, err := e.ConsumptionPerDistance(context.Background(), unit.ID)
	require.NoError(t, err)
	assert.Nil(t, estimate)

	// A second refuelling at the same reading: zero span, still nil.
	same := only
	same.ID = uuid.New()
	same.TransactionDate = only.TransactionDate.Add(time.Hour)
	store.trxs[same.ID] = same

	estimate, err = e.ConsumptionPerDistance(context.Background(), unit.ID)
	require.NoError(t, err)
	assert.Nil(t, estimate)

	// Hours were never recorded at all.
	estimate, err = e.ConsumptionPerHour(context.Background(), unit.ID)
	require.NoError(t, err)
	assert.Nil(t, estimate)
}
