// Package store wraps all MongoDB access behind small interfaces so
// handlers can be tested against in-memory fakes.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"notes-app/models"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

type UserStore interface {
	// FindByEmail returns ErrNotFound when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByID returns ErrNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Create persists a new user and returns ErrDuplicate when the email
	// is already taken.
	Create(ctx context.Context, name, email, passwordHash, googleID string) (*models.User, error)
}

// NoteStore scopes every lookup and mutation to the owning user, so a
// caller can never see or touch another user's notes.
type NoteStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error)
	Get(ctx context.Context, ownerID, noteID string) (*models.Note, error)
	Create(ctx context.Context, ownerID, title string, content json.RawMessage, tags []string) (*models.Note, error)
	Update(ctx context.Context, ownerID, noteID, title string, content json.RawMessage, tags []string) (*models.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}
