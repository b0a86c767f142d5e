package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

type CreateContainerInput struct {
	Code            string
	Name            string
	Kind            domain.ContainerKind
	MaxCapacity     float64
	CurrentCapacity float64
	MinThreshold    float64
}

type UpdateContainerInput struct {
	Name         *string
	MinThreshold *float64
	Active       *bool
}

// CapacityProjection is the read-only ledger view exposed to the
// presentation layer.
type CapacityProjection struct {
	ContainerID       uuid.UUID `json:"container_id"`
	Code              string    `json:"code"`
	Kind              string    `json:"kind"`
	CurrentCapacity   float64   `json:"current_capacity"`
	MaxCapacity       float64   `json:"max_capacity"`
	AvailableCapacity float64   `json:"available_capacity"`
	Percentage        float64   `json:"percentage"`
	BelowThreshold    bool      `json:"below_threshold"`
	Critical          bool      `json:"critical"`
}

type ContainerUsecase interface {
	CreateContainer(ctx context.Context, input *CreateContainerInput) (*domain.FuelContainer, error)
	UpdateContainer(ctx context.Context, containerID uuid.UUID, input *UpdateContainerInput) (*domain.FuelContainer, error)
	RetireContainer(ctx context.Context, containerID uuid.UUID) error
	GetContainerByID(ctx context.Context, containerID uuid.UUID) (*domain.FuelContainer, error)
	GetContainers(ctx context.Context, filters domain.ContainerFilters, page, limit int64) ([]*domain.FuelContainer, int64, error)
	GetCapacityProjection(ctx context.Context, containerID uuid.UUID) (*CapacityProjection, error)
	ManualCorrection(ctx context.Context, containerID uuid.UUID, newLevel float64, reason string, actor domain.Actor) (*domain.CapacityCorrection, error)
	GetCorrections(ctx context.Context, containerID uuid.UUID, page, limit int64) ([]*domain.CapacityCorrection, int64, error)
}

type DefaultContainerUsecase struct {
	txManager domain.TxManager
}

func NewDefaultContainerUsecase(txManager domain.TxManager) *DefaultContainerUsecase {
	return &DefaultContainerUsecase{txManager: txManager}
}

func (uc *DefaultContainerUsecase) CreateContainer(ctx context.Context, input *CreateContainerInput) (*domain.FuelContainer, error) {
	if input.MaxCapacity <= 0 {
		return nil, &domain.ValidationError{Violations: []domain.Violation{{
			Field: "max_capacity", Code: "NON_POSITIVE_CAPACITY", Message: "max capacity must be greater than zero",
		}}}
	}
	if input.CurrentCapacity < 0 || input.CurrentCapacity > input.MaxCapacity {
		return nil, &domain.ValidationError{Violations: []domain.Violation{{
			Field: "current_capacity", Code: "LEVEL_OUT_OF_BOUNDS", Message: "initial level must lie within [0, max_capacity]",
		}}}
	}
	if input.MinThreshold < 0 || input.MinThreshold > input.MaxCapacity {
		return nil, &domain.ValidationError{Violations: []domain.Violation{{
			Field: "min_threshold", Code: "THRESHOLD_OUT_OF_BOUNDS", Message: "threshold must lie within [0, max_capacity]",
		}}}
	}

	container := &domain.FuelContainer{
		ID:              uuid.New(),
		Code:            strings.TrimSpace(input.Code),
		Name:            input.Name,
		Kind:            input.Kind,
		MaxCapacity:     input.MaxCapacity,
		CurrentCapacity: input.CurrentCapacity,
		MinThreshold:    input.MinThreshold,
		Active:          true,
		CreatedAt:       time.Now(),
	}
	if err := uc.txManager.Store().Containers().CreateContainer(container); err != nil {
		return nil, err
	}
	return container, nil
}

// UpdateContainer changes container metadata. The code is an immutable
// business key and the level is owned by the Transaction Engine, so
// neither is touchable here.
func (uc *DefaultContainerUsecase) UpdateContainer(ctx context.Context, containerID uuid.UUID, input *UpdateContainerInput) (*domain.FuelContainer, error) {
	var updated *domain.FuelContainer
	err := uc.txManager.WithTransaction(ctx, func(s domain.Store) error {
		container, err := s.Containers().GetContainerForUpdate(containerID)
		if err != nil {
			return err
		}
		if input.Name != nil {
			container.Name = *input.Name
		}
		if input.MinThreshold != nil {
			if *input.MinThreshold < 0 || *input.MinThreshold > container.MaxCapacity {
				return &domain.ValidationError{Violations: []domain.Violation{{
					Field: "min_threshold", Code: "THRESHOLD_OUT_OF_BOUNDS", Message: "threshold must lie within [0, max_capacity]",
				}}}
			}
			container.MinThreshold = *input.MinThreshold
		}
		if input.Active != nil {
			container.Active = *input.Active
		}
		if err := s.Containers().UpdateContainer(container); err != nil {
			return err
		}
		updated = container
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *DefaultContainerUsecase) RetireContainer(ctx context.Context, containerID uuid.UUID) error {
	return uc.txManager.Store().Containers().SoftDeleteContainer(containerID)
}

func (uc *DefaultContainerUsecase) GetContainerByID(ctx context.Context, containerID uuid.UUID) (*domain.FuelContainer, error) {
	return uc.txManager.Store().Containers().GetContainerByID(containerID)
}

func (uc *DefaultContainerUsecase) GetContainers(ctx context.Context, filters domain.ContainerFilters, page, limit int64) ([]*domain.FuelContainer, int64, error) {
	return uc.txManager.Store().Containers().GetContainers(filters, page, limit)
}

func (uc *DefaultContainerUsecase) GetCapacityProjection(ctx context.Context, containerID uuid.UUID) (*CapacityProjection, error) {
	container, err := uc.txManager.Store().Containers().GetContainerByID(containerID)
	if err != nil {
		return nil, err
	}
	return &CapacityProjection{
		ContainerID:       container.ID,
		Code:              container.Code,
		Kind:              string(container.Kind),
		CurrentCapacity:   container.CurrentCapacity,
		MaxCapacity:       container.MaxCapacity,
		AvailableCapacity: container.AvailableCapacity(),
		Percentage:        container.CapacityPercentage(),
		BelowThreshold:    container.IsBelowThreshold(),
		Critical:          container.IsCritical(),
	}, nil
}

// ManualCorrection is the privileged escape hatch for reconciling the
// ledger against a physical dip reading. It is the only path besides the
// Transaction Engine that may move a container level, and every use
// leaves an audit row.
func (uc *DefaultContainerUsecase) ManualCorrection(ctx context.Context, containerID uuid.UUID, newLevel float64, reason string, actor domain.Actor) (*domain.CapacityCorrection, error) {
	if !actor.CanApprove() {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrReasonRequired
	}

	var correction *domain.CapacityCorrection
	err := uc.txManager.WithTransaction(ctx, func(s domain.Store) error {
		container, err := s.Containers().GetContainerForUpdate(containerID)
		if err != nil {
			return err
		}
		if newLevel < 0 || newLevel > container.MaxCapacity {
			return &domain.CapacityError{
				ContainerID:   container.ID,
				ContainerCode: container.Code,
				Current:       container.CurrentCapacity,
				Max:           container.MaxCapacity,
				Attempted:     newLevel,
			}
		}

		correction = &domain.CapacityCorrection{
			ID:            uuid.New(),
			ContainerID:   container.ID,
			PreviousLevel: container.CurrentCapacity,
			NewLevel:      newLevel,
			Reason:        reason,
			CorrectedBy:   actor.ID,
			CreatedAt:     time.Now(),
		}
		if err := s.Corrections().CreateCorrection(correction); err != nil {
			return err
		}
		return s.Containers().UpdateContainerLevel(container.ID, newLevel)
	})
	if err != nil {
		return nil, err
	}
	return correction, nil
}

func (uc *DefaultContainerUsecase) GetCorrections(ctx context.Context, containerID uuid.UUID, page, limit int64) ([]*domain.CapacityCorrection, int64, error) {
	return uc.txManager.Store().Corrections().GetCorrectionsByContainer(containerID, page, limit)
}
