package domain

type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// ThresholdAlert is raised when a committed mutation leaves a container
// at or below its threshold (warning) or at or below the critical level.
type ThresholdAlert struct {
	ContainerID   string        `json:"container_id"`
	ContainerCode string        `json:"container_code"`
	Kind          ContainerKind `json:"kind"`
	Level         float64       `json:"level"`
	Percentage    float64       `json:"percentage"`
	Threshold     float64       `json:"threshold"`
	Severity      AlertSeverity `json:"severity"`
}

type Message struct {
	Key   []byte
	Value []byte
}

// PublisherPort is the fire-and-forget alerting sink. Delivery failures
// are logged by callers, never propagated.
type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}
