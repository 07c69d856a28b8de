package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

// CommunicationRepository is the append-only communications log.
type CommunicationRepository struct {
	coll *mongo.Collection
}

func NewCommunicationRepository(db *mongo.Database) *CommunicationRepository {
	return &CommunicationRepository{coll: db.Collection(CollectionCommunications)}
}

func (r *CommunicationRepository) List(ctx context.Context, studentID string) ([]models.Communication, error) {
	items, err := newestFirst[models.Communication](ctx, r.coll, studentID, "timestamp")
	if err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}
	return items, nil
}

func (r *CommunicationRepository) Create(ctx context.Context, item *models.Communication) error {
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert communication: %w", err)
	}
	return nil
}
