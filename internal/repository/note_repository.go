package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

// NoteRepository persists student notes.
type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(CollectionNotes)}
}

func (r *NoteRepository) List(ctx context.Context, studentID string) ([]models.Note, error) {
	notes, err := newestFirst[models.Note](ctx, r.coll, studentID, "createdAt")
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (*models.Note, error) {
	note, err := findByID[models.Note](ctx, r.coll, id)
	if err != nil {
		return nil, fmt.Errorf("find note %s: %w", id, err)
	}
	return note, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if _, err := r.coll.InsertOne(ctx, note); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of changes and returns the stored note.
func (r *NoteRepository) Update(ctx context.Context, id string, changes models.NoteChanges) (*models.Note, error) {
	set := bson.D{{Key: "updatedAt", Value: changes.UpdatedAt}}
	if changes.Content != nil {
		set = append(set, bson.E{Key: "content", Value: *changes.Content})
	}
	if changes.Visibility != nil {
		set = append(set, bson.E{Key: "visibility", Value: *changes.Visibility})
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note models.Note
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&note); err != nil {
		return nil, fmt.Errorf("update note %s: %w", id, err)
	}
	return &note, nil
}

// Delete returns mongo.ErrNoDocuments (wrapped) when nothing was removed.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete note %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}
