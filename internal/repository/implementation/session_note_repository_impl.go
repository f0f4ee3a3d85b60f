package implementation

import (
	"context"
	"errors"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/mapper"
	"clinical-notes-be/internal/model"
	"clinical-notes-be/internal/repository/contract"
	"clinical-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionNoteMapper
}

func NewSessionNoteRepository(db *gorm.DB) contract.SessionNoteRepository {
	return &SessionNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionNoteMapper(),
	}
}

func (r *SessionNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionNoteRepositoryImpl) Create(ctx context.Context, note *entity.SessionNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionNoteRepositoryImpl) Update(ctx context.Context, note *entity.SessionNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionNoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SessionNote{}, id).Error
}

func (r *SessionNoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionNote, error) {
	var m model.SessionNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SessionNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionNote, error) {
	var models []*model.SessionNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SessionNoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SessionNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
