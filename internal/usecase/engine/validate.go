package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

const (
	CodeUnknownType       = "UNKNOWN_TYPE"
	CodeMissingReference  = "MISSING_REFERENCE"
	CodeForbiddenRef      = "FORBIDDEN_REFERENCE"
	CodeWrongKind         = "WRONG_CONTAINER_KIND"
	CodeNotFound          = "REFERENCE_NOT_FOUND"
	CodeNonPositiveAmount = "NON_POSITIVE_AMOUNT"
	CodeInsufficientFuel  = "INSUFFICIENT_FUEL"
	CodeReadingRegressed  = "READING_REGRESSED"
)

// Validate checks a transaction intent against current state and returns
// the full list of violated rules so the caller can show them all at
// once.
func (e *DefaultEngine) Validate(ctx context.Context, trx *domain.FuelTransaction) []domain.Violation {
	return e.ValidateIn(e.txManager.Store(), trx)
}

func (e *DefaultEngine) ValidateIn(s domain.Store, trx *domain.FuelTransaction) []domain.Violation {
	var violations []domain.Violation

	req, ok := domain.TypeRequirements(trx.Type)
	if !ok {
		violations = append(violations, domain.Violation{
			Field:   "type",
			Code:    CodeUnknownType,
			Message: fmt.Sprintf("unknown transaction type %q", trx.Type),
		})
		return violations
	}

	violations = append(violations, checkReferences(trx, req)...)

	if trx.FuelAmount <= 0 {
		violations = append(violations, domain.Violation{
			Field:   "fuel_amount",
			Code:    CodeNonPositiveAmount,
			Message: "fuel amount must be greater than zero",
		})
	}

	// Referenced state checks run only on structurally present references.
	if req.NeedsSource && trx.SourceContainerID != nil {
		violations = append(violations, e.checkContainer(s, *trx.SourceContainerID, req.SourceKind, "source_container_id", trx.FuelAmount, true)...)
	}
	if req.NeedsDest && trx.DestContainerID != nil {
		violations = append(violations, e.checkContainer(s, *trx.DestContainerID, req.DestKind, "dest_container_id", trx.FuelAmount, false)...)
	}
	if req.NeedsUnit && trx.UnitID != nil {
		violations = append(violations, e.checkUnitReadings(s, trx)...)
	}

	return violations
}

func checkReferences(trx *domain.FuelTransaction, req domain.RefRequirement) []domain.Violation {
	var violations []domain.Violation

	check := func(field string, present, needed bool) {
		if needed && !present {
			violations = append(violations, domain.Violation{
				Field:   field,
				Code:    CodeMissingReference,
				Message: fmt.Sprintf("%s is required for type %s", field, trx.Type),
			})
		}
		if !needed && present {
			violations = append(violations, domain.Violation{
				Field:   field,
				Code:    CodeForbiddenRef,
				Message: fmt.Sprintf("%s must not be set for type %s", field, trx.Type),
			})
		}
	}

	check("source_container_id", trx.SourceContainerID != nil, req.NeedsSource)
	check("dest_container_id", trx.DestContainerID != nil, req.NeedsDest)
	check("unit_id", trx.UnitID != nil, req.NeedsUnit)

	return violations
}

func (e *DefaultEngine) checkContainer(s domain.Store, containerID uuid.UUID, kind domain.ContainerKind, field string, amount float64, isSource bool) []domain.Violation {
	container, err := s.Containers().GetContainerByID(containerID)
	if err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			return []domain.Violation{{
				Field:   field,
				Code:    CodeNotFound,
				Message: fmt.Sprintf("container %s does not exist", containerID),
			}}
		}
		return []domain.Violation{{
			Field:   field,
			Code:    CodeNotFound,
			Message: fmt.Sprintf("container %s could not be loaded", containerID),
		}}
	}

	var violations []domain.Violation
	if container.Kind != kind {
		violations = append(violations, domain.Violation{
			Field:   field,
			Code:    CodeWrongKind,
			Message: fmt.Sprintf("container %s is a %s, expected %s", container.Code, container.Kind, kind),
		})
	}
	if isSource && amount > 0 && container.CurrentCapacity < amount {
		violations = append(violations, domain.Violation{
			Field:   "fuel_amount",
			Code:    CodeInsufficientFuel,
			Message: fmt.Sprintf("container %s holds %.2f, cannot dispense %.2f", container.Code, container.CurrentCapacity, amount),
		})
	}
	return violations
}

func (e *DefaultEngine) checkUnitReadings(s domain.Store, trx *domain.FuelTransaction) []domain.Violation {
	unit, err := s.Units().GetUnitByID(*trx.UnitID)
	if err != nil {
		return []domain.Violation{{
			Field:   "unit_id",
			Code:    CodeNotFound,
			Message: fmt.Sprintf("unit %s does not exist", trx.UnitID),
		}}
	}

	var violations []domain.Violation
	if trx.UnitDistance != nil && *trx.UnitDistance < unit.CurrentDistance {
		violations = append(violations, domain.Violation{
			Field:   "unit_distance",
			Code:    CodeReadingRegressed,
			Message: fmt.Sprintf("distance reading %.1f is behind recorded %.1f for unit %s", *trx.UnitDistance, unit.CurrentDistance, unit.Code),
		})
	}
	if trx.UnitHours != nil && *trx.UnitHours < unit.CurrentHours {
		violations = append(violations, domain.Violation{
			Field:   "unit_hours",
			Code:    CodeReadingRegressed,
			Message: fmt.Sprintf("hour reading %.1f is behind recorded %.1f for unit %s", *trx.UnitHours, unit.CurrentHours, unit.Code),
		})
	}
	return violations
}
