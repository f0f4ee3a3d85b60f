package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RISK_FLAGGED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by both publishers and the
// subscriber when reconstructing events off the wire.
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

// Event type codes emitted by the session pipeline.
const (
	TypeRiskFlagged   = "RISK_FLAGGED"
	TypeNoteProcessed = "NOTE_PROCESSED"
)

// NewRiskFlaggedEvent is emitted when a processed session carries at least
// one non-trivial risk flag.
func NewRiskFlaggedEvent(sessionNoteID, patientID, level, category string) Event {
	return BaseEvent{
		Type: TypeRiskFlagged,
		Data: map[string]interface{}{
			"session_note_id": sessionNoteID,
			"patient_id":      patientID,
			"level":           level,
			"category":        category,
		},
		OccurredAt: time.Now(),
	}
}

// NewNoteProcessedEvent is emitted after a session note is parsed and stored.
func NewNoteProcessedEvent(sessionNoteID, patientID string) Event {
	return BaseEvent{
		Type: TypeNoteProcessed,
		Data: map[string]interface{}{
			"session_note_id": sessionNoteID,
			"patient_id":      patientID,
		},
		OccurredAt: time.Now(),
	}
}
