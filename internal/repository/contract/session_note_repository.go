package contract

import (
	"context"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionNoteRepository interface {
	Create(ctx context.Context, note *entity.SessionNote) error
	Update(ctx context.Context, note *entity.SessionNote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionNote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionNote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
