package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talgatov/cloud-notes-api/internal/domain"
	"github.com/talgatov/cloud-notes-api/internal/repository"
)

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) Create(ctx context.Context, title, content string) (*domain.Note, error) {
	query := `
		INSERT INTO notes (title, content)
		VALUES ($1, $2)
		RETURNING id, title, content, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, title, content)
	return scanNote(row)
}

func (r *NoteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	query := `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []*domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	return scanNote(row)
}

func (r *NoteRepository) Update(ctx context.Context, id string, input repository.UpdateNoteInput) (*domain.Note, error) {
	// COALESCE keeps columns for which no new value was supplied.
	query := `
		UPDATE notes
		SET    title      = COALESCE($2, title),
		       content    = COALESCE($3, content),
		       updated_at = NOW()
		WHERE  id = $1
		RETURNING id, title, content, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, id, input.Title, input.Content)
	return scanNote(row)
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &n, nil
}
