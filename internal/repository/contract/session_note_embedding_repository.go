package contract

import (
	"context"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredSessionNoteEmbedding wraps SessionNoteEmbedding with its similarity score
type ScoredSessionNoteEmbedding struct {
	Embedding  *entity.SessionNoteEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type SessionNoteEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.SessionNoteEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.SessionNoteEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySessionNoteId(ctx context.Context, sessionNoteId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionNoteEmbedding, error)
	// SearchSimilarWithScore returns embeddings with their cosine similarity
	// scores, filtered by threshold and scoped to one patient.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, patientId string, threshold float64) ([]*ScoredSessionNoteEmbedding, error)
}
