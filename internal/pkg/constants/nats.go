package constants

// NATS Subjects
const (
	// Check-in service
	SubjectCountUpdated  = "checkin.count.updated"
	SubjectStatusChanged = "checkin.status.changed"
	SubjectCheckInSwept  = "checkin.expired"
)
