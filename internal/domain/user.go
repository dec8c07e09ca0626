package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID    string
	Name  string
	Email string

	// PasswordHash is the bcrypt hash; the original password is never stored.
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
