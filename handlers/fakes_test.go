package handlers

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"notes-app/auth"
	"notes-app/models"
	"notes-app/store"
)

// In-memory stand-ins for the Mongo stores.

type fakeUserStore struct {
	users []*models.User
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) Create(_ context.Context, name, email, passwordHash, googleID string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return nil, store.ErrDuplicate
		}
	}
	now := time.Now().UTC()
	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		GoogleID:  googleID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users = append(s.users, user)
	return user, nil
}

type fakeNoteStore struct {
	notes []models.Note
}

func (s *fakeNoteStore) ListByOwner(_ context.Context, ownerID string) ([]models.Note, error) {
	notes := []models.Note{}
	for _, n := range s.notes {
		if n.User.Hex() == ownerID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (s *fakeNoteStore) Get(_ context.Context, ownerID, noteID string) (*models.Note, error) {
	for i := range s.notes {
		if s.notes[i].ID.Hex() == noteID && s.notes[i].User.Hex() == ownerID {
			note := s.notes[i]
			return &note, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeNoteStore) Create(_ context.Context, ownerID, title string, content json.RawMessage, tags []string) (*models.Note, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, store.ErrNotFound
	}
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC()
	note := models.Note{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   content,
		Tags:      tags,
		User:      owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append(s.notes, note)
	return &note, nil
}

func (s *fakeNoteStore) Update(_ context.Context, ownerID, noteID, title string, content json.RawMessage, tags []string) (*models.Note, error) {
	for i := range s.notes {
		if s.notes[i].ID.Hex() == noteID && s.notes[i].User.Hex() == ownerID {
			if tags == nil {
				tags = []string{}
			}
			s.notes[i].Title = title
			s.notes[i].Content = content
			s.notes[i].Tags = tags
			s.notes[i].UpdatedAt = time.Now().UTC()
			note := s.notes[i]
			return &note, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeNoteStore) Delete(_ context.Context, ownerID, noteID string) error {
	for i := range s.notes {
		if s.notes[i].ID.Hex() == noteID && s.notes[i].User.Hex() == ownerID {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeGoogleVerifier struct {
	user *auth.GoogleUser
	err  error
}

func (v *fakeGoogleVerifier) Verify(_ context.Context, _ string) (*auth.GoogleUser, error) {
	return v.user, v.err
}
