package engine

import (
	"fmt"
	"sort"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

// containerDelta is one signed level change; positive means increase.
type containerDelta struct {
	containerID uuid.UUID
	signed      float64
}

// deltasFor expands a transaction into the signed level changes its type
// implies. sign is +1 for forward application and -1 for reversal.
func deltasFor(trx *domain.FuelTransaction, sign float64) []containerDelta {
	amount := trx.FuelAmount * sign
	var deltas []containerDelta
	switch trx.Type {
	case domain.VendorToStorage:
		deltas = append(deltas, containerDelta{*trx.DestContainerID, amount})
	case domain.StorageToTruck:
		deltas = append(deltas,
			containerDelta{*trx.SourceContainerID, -amount},
			containerDelta{*trx.DestContainerID, amount},
		)
	case domain.StorageToUnit, domain.TruckToUnit:
		deltas = append(deltas, containerDelta{*trx.SourceContainerID, -amount})
	}
	return deltas
}

// applyDeltas locks every implicated container and applies its change.
// Containers are locked in ID order so two concurrent operations over the
// same pair cannot deadlock. Any bounds failure aborts the whole set: the
// surrounding store transaction rolls back.
func (e *DefaultEngine) applyDeltas(s domain.Store, deltas []containerDelta) ([]domain.ThresholdAlert, error) {
	sorted := make([]containerDelta, len(deltas))
	copy(sorted, deltas)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].containerID.String() < sorted[j].containerID.String()
	})

	var alerts []domain.ThresholdAlert
	for _, delta := range sorted {
		container, err := s.Containers().GetContainerForUpdate(delta.containerID)
		if err != nil {
			return nil, fmt.Errorf("locking container %s: %w", delta.containerID, err)
		}

		wasBelow := container.IsBelowThreshold()
		wasCritical := container.IsCritical()

		direction := domain.DirectionIncrease
		amount := delta.signed
		if amount < 0 {
			direction = domain.DirectionDecrease
			amount = -amount
		}
		if err := container.ApplyDelta(amount, direction); err != nil {
			return nil, err
		}
		if err := s.Containers().UpdateContainerLevel(container.ID, container.CurrentCapacity); err != nil {
			return nil, fmt.Errorf("updating container %s level: %w", container.Code, err)
		}

		if alert, ok := thresholdCrossing(container, wasBelow, wasCritical); ok {
			alerts = append(alerts, alert)
		}
		if e.metrics != nil {
			e.metrics.RecordContainerLevel(container.Code, string(container.Kind), container.CapacityPercentage())
		}
	}
	return alerts, nil
}

func thresholdCrossing(container *domain.FuelContainer, wasBelow, wasCritical bool) (domain.ThresholdAlert, bool) {
	nowBelow := container.IsBelowThreshold()
	nowCritical := container.IsCritical()
	if (nowBelow && !wasBelow) || (nowCritical && !wasCritical) {
		severity := domain.SeverityWarning
		if nowCritical {
			severity = domain.SeverityCritical
		}
		return domain.ThresholdAlert{
			ContainerID:   container.ID.String(),
			ContainerCode: container.Code,
			Kind:          container.Kind,
			Level:         container.CurrentCapacity,
			Percentage:    container.CapacityPercentage(),
			Threshold:     container.MinThreshold,
			Severity:      severity,
		}, true
	}
	return domain.ThresholdAlert{}, false
}

// ApplyIn performs the forward ledger effects of a transaction. Create
// and restore share identical effects. Unit meter readings are raised
// afterwards when supplied and ahead of the stored values.
func (e *DefaultEngine) ApplyIn(s domain.Store, trx *domain.FuelTransaction, mode ApplyMode) ([]domain.ThresholdAlert, error) {
	alerts, err := e.applyDeltas(s, deltasFor(trx, 1))
	if err != nil {
		return nil, err
	}
	if err := e.advanceUnitReadings(s, trx); err != nil {
		return nil, err
	}
	return alerts, nil
}

// ReverseIn mirrors ApplyIn with directions inverted. Unit readings stay
// where they are: meters do not run backwards.
func (e *DefaultEngine) ReverseIn(s domain.Store, trx *domain.FuelTransaction) ([]domain.ThresholdAlert, error) {
	return e.applyDeltas(s, deltasFor(trx, -1))
}

// AdjustIn applies only the amount delta of an edit, in the same
// directional sense as the original apply. This avoids transiently
// failing the insufficient-fuel check on a full reverse-and-reapply.
func (e *DefaultEngine) AdjustIn(s domain.Store, trx *domain.FuelTransaction, oldAmount, newAmount float64) ([]domain.ThresholdAlert, error) {
	delta := newAmount - oldAmount
	if delta == 0 {
		return nil, nil
	}
	scaled := *trx
	scaled.FuelAmount = delta
	return e.applyDeltas(s, deltasFor(&scaled, 1))
}

func (e *DefaultEngine) advanceUnitReadings(s domain.Store, trx *domain.FuelTransaction) error {
	if trx.UnitID == nil || (trx.UnitDistance == nil && trx.UnitHours == nil) {
		return nil
	}
	unit, err := s.Units().GetUnitForUpdate(*trx.UnitID)
	if err != nil {
		return fmt.Errorf("locking unit %s: %w", trx.UnitID, err)
	}
	if unit.RecordReadings(trx.UnitDistance, trx.UnitHours) {
		if err := s.Units().UpdateUnitReadings(unit.ID, unit.CurrentDistance, unit.CurrentHours); err != nil {
			return fmt.Errorf("updating unit %s readings: %w", unit.Code, err)
		}
	}
	return nil
}
