package repository

import (
	"context"

	"github.com/talgatov/cloud-notes-api/internal/domain"
)

type UserRepository interface {
	// Create persists a new account. Returns domain.ErrEmailTaken when the
	// email hits the unique constraint.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
