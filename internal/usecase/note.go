package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/talgatov/cloud-notes-api/internal/domain"
	"github.com/talgatov/cloud-notes-api/internal/repository"
)

type NoteUsecase struct {
	repo repository.NoteRepository
}

func NewNoteUsecase(repo repository.NoteRepository) *NoteUsecase {
	return &NoteUsecase{repo: repo}
}

type CreateNoteInput struct {
	Title   string
	Content string
}

type UpdateNoteInput struct {
	Title   *string
	Content *string
}

func (u *NoteUsecase) Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	note, err := u.repo.Create(ctx, input.Title, input.Content)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (u *NoteUsecase) List(ctx context.Context) ([]*domain.Note, error) {
	return u.repo.List(ctx)
}

func (u *NoteUsecase) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	if !validID(id) {
		return nil, domain.ErrNoteNotFound
	}
	return u.repo.GetByID(ctx, id)
}

func (u *NoteUsecase) Update(ctx context.Context, id string, input UpdateNoteInput) (*domain.Note, error) {
	if !validID(id) {
		return nil, domain.ErrNoteNotFound
	}
	return u.repo.Update(ctx, id, repository.UpdateNoteInput{
		Title:   input.Title,
		Content: input.Content,
	})
}

func (u *NoteUsecase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNoteNotFound
	}
	return u.repo.Delete(ctx, id)
}

// validID rejects ids that cannot be a note id before they hit the database.
// A malformed id would otherwise fail the uuid column cast and read as a
// driver error instead of a plain not-found.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
