package mapper

import (
	"time"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SessionNoteEmbeddingMapper struct{}

func NewSessionNoteEmbeddingMapper() *SessionNoteEmbeddingMapper {
	return &SessionNoteEmbeddingMapper{}
}

func (m *SessionNoteEmbeddingMapper) ToEntity(e *model.SessionNoteEmbedding) *entity.SessionNoteEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.SessionNoteEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		SessionNoteId:  e.SessionNoteId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *SessionNoteEmbeddingMapper) ToModel(e *entity.SessionNoteEmbedding) *model.SessionNoteEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.SessionNoteEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		SessionNoteId:  e.SessionNoteId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *SessionNoteEmbeddingMapper) ToEntities(embeddings []*model.SessionNoteEmbedding) []*entity.SessionNoteEmbedding {
	entities := make([]*entity.SessionNoteEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *SessionNoteEmbeddingMapper) ToModels(embeddings []*entity.SessionNoteEmbedding) []*model.SessionNoteEmbedding {
	models := make([]*model.SessionNoteEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
