package dto

import "github.com/google/uuid"

// PublishEmbedSessionNoteMessage is the watermill payload asking the
// consumer to (re)build embeddings for one stored session note.
type PublishEmbedSessionNoteMessage struct {
	SessionNoteId uuid.UUID `json:"session_note_id"`
}
