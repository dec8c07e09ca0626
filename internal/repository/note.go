package repository

import (
	"context"

	"github.com/talgatov/cloud-notes-api/internal/domain"
)

type UpdateNoteInput struct {
	Title   *string // nil = leave unchanged
	Content *string
}

// Usecases depend on this interface, not on the pgx implementation, so the
// store can be swapped and tests can inject fakes.
type NoteRepository interface {
	Create(ctx context.Context, title, content string) (*domain.Note, error)
	List(ctx context.Context) ([]*domain.Note, error)
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	Update(ctx context.Context, id string, input UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
}
