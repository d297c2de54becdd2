package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notes-app/models"
)

type MongoNoteStore struct {
	collection *mongo.Collection
}

func NewMongoNoteStore(db *mongo.Database) *MongoNoteStore {
	return &MongoNoteStore{collection: db.Collection("notes")}
}

func (s *MongoNoteStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []models.Note{}, nil
	}
	cursor, err := s.collection.Find(ctx, bson.M{"user": oid})
	if err != nil {
		return nil, err
	}
	notes := []models.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *MongoNoteStore) Get(ctx context.Context, ownerID, noteID string) (*models.Note, error) {
	filter, err := ownedFilter(ownerID, noteID)
	if err != nil {
		return nil, err
	}
	var note models.Note
	err = s.collection.FindOne(ctx, filter).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *MongoNoteStore) Create(ctx context.Context, ownerID, title string, content json.RawMessage, tags []string) (*models.Note, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
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
		User:      oid,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.collection.InsertOne(ctx, note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *MongoNoteStore) Update(ctx context.Context, ownerID, noteID, title string, content json.RawMessage, tags []string) (*models.Note, error) {
	filter, err := ownedFilter(ownerID, noteID)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	update := bson.M{"$set": bson.M{
		"title":     title,
		"content":   content,
		"tags":      tags,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var note models.Note
	err = s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *MongoNoteStore) Delete(ctx context.Context, ownerID, noteID string) error {
	filter, err := ownedFilter(ownerID, noteID)
	if err != nil {
		return err
	}
	res, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ownedFilter builds the {_id, user} filter every single-note operation
// uses. Malformed ids map to ErrNotFound.
func ownedFilter(ownerID, noteID string) (bson.M, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, ErrNotFound
	}
	return bson.M{"_id": id, "user": owner}, nil
}
