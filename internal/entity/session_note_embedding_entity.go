package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionNoteEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	SessionNoteId  uuid.UUID
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
