package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

// ConfigurationRepository reads and writes the global config singleton.
type ConfigurationRepository struct {
	coll *mongo.Collection
}

func NewConfigurationRepository(db *mongo.Database) *ConfigurationRepository {
	return &ConfigurationRepository{coll: db.Collection(CollectionConfig)}
}

// Get returns mongo.ErrNoDocuments (wrapped) when the singleton was never written.
func (r *ConfigurationRepository) Get(ctx context.Context) (*models.GlobalConfig, error) {
	cfg, err := findByID[models.GlobalConfig](ctx, r.coll, models.GlobalConfigID)
	if err != nil {
		return nil, fmt.Errorf("get global config: %w", err)
	}
	return cfg, nil
}

// Put replaces the singleton, creating it if needed.
func (r *ConfigurationRepository) Put(ctx context.Context, cfg *models.GlobalConfig) error {
	cfg.ID = models.GlobalConfigID
	_, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: models.GlobalConfigID}}, cfg, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put global config: %w", err)
	}
	return nil
}
