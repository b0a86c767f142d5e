package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FuelMetrics holds every prometheus series the service exports.
type FuelMetrics struct {
	TransactionsCreatedTotal  prometheus.CounterVec
	TransactionsReversedTotal prometheus.CounterVec
	TransactionsAdjustedTotal prometheus.CounterVec
	FuelMovedTotal            prometheus.CounterVec

	ApprovalRequestsTotal  prometheus.CounterVec
	ApprovalDecisionsTotal prometheus.CounterVec

	ThresholdAlertsTotal prometheus.CounterVec
	ContainerLevelGauge  prometheus.GaugeVec

	EngineErrorsTotal prometheus.CounterVec

	OperationDuration prometheus.HistogramVec
}

func NewFuelMetrics() *FuelMetrics {
	return &FuelMetrics{
		TransactionsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuel_transactions_created_total",
				Help: "Number of fuel transactions applied, by type",
			},
			[]string{"type"},
		),

		TransactionsReversedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuel_transactions_reversed_total",
				Help: "Number of fuel transactions reversed (deleted), by type",
			},
			[]string{"type"},
		),

		TransactionsAdjustedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuel_transactions_adjusted_total",
				Help: "Number of amount adjustments applied to existing transactions",
			},
			[]string{"type"},
		),

		FuelMovedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuel_moved_liters_total",
				Help: "Total fuel volume moved through the ledger, by type and direction",
			},
			[]string{"type", "direction"},
		),

		ApprovalRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuel_approval_requests_total",
				Help: "Approval requests opened, by request type",
			},
			[]string{"request_type"},
		),

		ApprovalDecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuel_approval_decisions_total",
				Help: "Approval requests resolved, by request type and outcome",
			},
			[]string{"request_type", "outcome"},
		),

		ThresholdAlertsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuel_threshold_alerts_total",
				Help: "Threshold crossings published to the alerting sink",
			},
			[]string{"kind", "severity"},
		),

		ContainerLevelGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fuel_container_level_percent",
				Help: "Current fill percentage per container",
			},
			[]string{"container_code", "kind"},
		),

		EngineErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuel_engine_errors_total",
				Help: "Rejected engine operations, by operation and error class",
			},
			[]string{"operation", "error_type"},
		),

		OperationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fuel_operation_duration_seconds",
				Help:    "Engine operation latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"operation"},
		),
	}
}

func (m *FuelMetrics) RecordTransactionCreated(trxType string, amount float64) {
	m.TransactionsCreatedTotal.WithLabelValues(trxType).Inc()
	m.FuelMovedTotal.WithLabelValues(trxType, "forward").Add(amount)
}

func (m *FuelMetrics) RecordTransactionReversed(trxType string, amount float64) {
	m.TransactionsReversedTotal.WithLabelValues(trxType).Inc()
	m.FuelMovedTotal.WithLabelValues(trxType, "reverse").Add(amount)
}

func (m *FuelMetrics) RecordTransactionAdjusted(trxType string, delta float64) {
	m.TransactionsAdjustedTotal.WithLabelValues(trxType).Inc()
	if delta < 0 {
		delta = -delta
	}
	m.FuelMovedTotal.WithLabelValues(trxType, "adjust").Add(delta)
}

func (m *FuelMetrics) RecordApprovalRequest(requestType string) {
	m.ApprovalRequestsTotal.WithLabelValues(requestType).Inc()
}

func (m *FuelMetrics) RecordApprovalDecision(requestType, outcome string) {
	m.ApprovalDecisionsTotal.WithLabelValues(requestType, outcome).Inc()
}

func (m *FuelMetrics) RecordThresholdAlert(kind, severity string) {
	m.ThresholdAlertsTotal.WithLabelValues(kind, severity).Inc()
}

func (m *FuelMetrics) RecordContainerLevel(containerCode, kind string, percentage float64) {
	m.ContainerLevelGauge.WithLabelValues(containerCode, kind).Set(percentage)
}

func (m *FuelMetrics) RecordEngineError(operation, errorType string) {
	m.EngineErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

func (m *FuelMetrics) RecordOperationDuration(operation string, seconds float64) {
	m.OperationDuration.WithLabelValues(operation).Observe(seconds)
}
