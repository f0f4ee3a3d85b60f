package unitofwork

import (
	"context"

	"clinical-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionNoteRepository() contract.SessionNoteRepository
	SessionNoteEmbeddingRepository() contract.SessionNoteEmbeddingRepository
}
