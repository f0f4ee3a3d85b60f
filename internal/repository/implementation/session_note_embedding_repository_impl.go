package implementation

import (
	"context"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/mapper"
	"clinical-notes-be/internal/model"
	"clinical-notes-be/internal/repository/contract"
	"clinical-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SessionNoteEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionNoteEmbeddingMapper
}

func NewSessionNoteEmbeddingRepository(db *gorm.DB) contract.SessionNoteEmbeddingRepository {
	return &SessionNoteEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionNoteEmbeddingMapper(),
	}
}

func (r *SessionNoteEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionNoteEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.SessionNoteEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionNoteEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.SessionNoteEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.SessionNoteEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *SessionNoteEmbeddingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SessionNoteEmbedding{}, id).Error
}

func (r *SessionNoteEmbeddingRepositoryImpl) DeleteBySessionNoteId(ctx context.Context, sessionNoteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_note_id = ?", sessionNoteId).Delete(&model.SessionNoteEmbedding{}).Error
}

func (r *SessionNoteEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionNoteEmbedding, error) {
	var models []*model.SessionNoteEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// SearchSimilarWithScore returns embeddings with similarity scores, filtered by threshold.
// Cosine distance in pgvector is 1 - cosine_similarity, so the similarity is
// computed as 1 - (embedding_value <=> query_vector).
func (r *SessionNoteEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, patientId string, threshold float64) ([]*contract.ScoredSessionNoteEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.SessionNoteEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("session_note_embeddings").
		Select("session_note_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN session_notes ON session_notes.id = session_note_embeddings.session_note_id").
		Where("session_notes.patient_id = ?", patientId).
		Where("session_note_embeddings.deleted_at IS NULL").
		Where("session_notes.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredSessionNoteEmbedding, len(results))
	for i, res := range results {
		e := r.mapper.ToEntity(&res.SessionNoteEmbedding)
		scored[i] = &contract.ScoredSessionNoteEmbedding{
			Embedding:  e,
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
