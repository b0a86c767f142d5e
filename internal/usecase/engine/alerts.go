package engine

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
)

// PublishAlerts ships threshold alerts to the alerting sink. Delivery is
// fire-and-forget: failures are logged and never propagated, a ledger
// mutation must not fail because a notification could not be sent.
func (e *DefaultEngine) PublishAlerts(alerts []domain.ThresholdAlert) {
	if e.publisher == nil || len(alerts) == 0 {
		return
	}
	go func(alerts []domain.ThresholdAlert) {
		for _, alert := range alerts {
			value, err := json.Marshal(alert)
			if err != nil {
				slog.Error("failed to marshal threshold alert", "container", alert.ContainerCode, "error", err.Error())
				continue
			}
			msg := domain.Message{Key: []byte(alert.ContainerID), Value: value}
			if err := e.publisher.Publish(e.alertTopic, msg); err != nil {
				slog.Error("failed to publish threshold alert", "container", alert.ContainerCode, "severity", alert.Severity, "error", err.Error())
				continue
			}
			if e.metrics != nil {
				e.metrics.RecordThresholdAlert(string(alert.Kind), string(alert.Severity))
			}
		}
	}(alerts)
}

func errorLabel(err error) string {
	var capacityErr *domain.CapacityError
	if errors.As(err, &capacityErr) {
		return "out_of_bounds"
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return "validation"
	}
	return "internal"
}
