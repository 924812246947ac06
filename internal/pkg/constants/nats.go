package constants

// NATS Subjects
const (
	// Tracking
	SubjectBusTracking = "bus.tracking"
)
