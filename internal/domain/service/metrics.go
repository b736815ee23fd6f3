package service

import "time"

// Fix ingestion outcomes
const (
	FixAccepted = "accepted"
	FixRejected = "rejected"
	FixInvalid  = "invalid"
	FixFailed   = "failed"
)

// MetricsRecorder receives engine counters. Implementations must be safe for
// concurrent use.
type MetricsRecorder interface {
	FixIngested(result string)
	AlertCreated(alertType string)
	AlertSuppressed(alertType string)
	AlertingFailed(stage string)
	ObserveAlerting(elapsed time.Duration)
	RealtimeDelivered(event string, sessions int)
	RealtimeDropped(event string)
	SessionsChanged(delta int)
}
