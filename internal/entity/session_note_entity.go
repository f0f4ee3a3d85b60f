package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SessionNote is a processed therapy session: the raw transcript input,
// the structured result produced by the parsing engine, and the highest
// risk level found in the note.
type SessionNote struct {
	Id        uuid.UUID
	PatientId string
	RawInput  string
	Result    json.RawMessage
	RiskLevel string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
