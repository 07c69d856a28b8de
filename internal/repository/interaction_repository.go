package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

// InteractionRepository is the append-only activity history.
type InteractionRepository struct {
	coll *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{coll: db.Collection(CollectionInteractions)}
}

func (r *InteractionRepository) List(ctx context.Context, studentID string) ([]models.Interaction, error) {
	items, err := newestFirst[models.Interaction](ctx, r.coll, studentID, "timestamp")
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	return items, nil
}

func (r *InteractionRepository) Create(ctx context.Context, item *models.Interaction) error {
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}
