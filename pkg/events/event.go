package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes published on the bus.
const (
	TypeSessionCompleted    = "SESSION_COMPLETED"
	TypeAssessmentCompleted = "ASSESSMENT_COMPLETED"
	TypeAssessmentFailed    = "ASSESSMENT_FAILED"
	TypeRecordingLinked     = "RECORDING_LINKED"
	TypeScenarioAssigned    = "SCENARIO_ASSIGNED"
	TypeTopicMastered       = "TOPIC_MASTERED"
)

// BaseEvent is the generic implementation used by publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New builds a BaseEvent stamped with the current time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
