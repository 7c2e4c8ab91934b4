package security

// Severity represents the severity level of a security event.
// It is derived from the EventType, never supplied by callers.
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

// EventSeverityMap defines the fixed severity for each event type.
var EventSeverityMap = map[EventType]Severity{
	EventLoginSuccess:   SeverityINFO,
	EventUserRegistered: SeverityINFO,

	EventLoginFailed:        SeverityWARN,
	EventRateLimitTriggered: SeverityWARN,
	EventInvalidToken:       SeverityWARN,

	EventLoginBlocked:       SeverityHIGH,
	EventUnauthorizedAccess: SeverityHIGH,
}

// GetSeverity returns the severity for an event type.
// Unmapped event types default to MEDIUM.
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

func IsHighOrAbove(eventType EventType) bool {
	return GetSeverity(eventType) == SeverityHIGH
}
