package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
)

const (
	configCacheKey     = "config:global"
	configCachePattern = "config:*"
)

type configurationRepository interface {
	Get(ctx context.Context) (*models.GlobalConfig, error)
	Put(ctx context.Context, cfg *models.GlobalConfig) error
}

// ConfigurationService serves the global vocabulary singleton through the cache.
type ConfigurationService struct {
	repo      configurationRepository
	cache     *CacheService
	ttl       time.Duration
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

func NewConfigurationService(repo configurationRepository, cache *CacheService, ttl time.Duration, validate *validator.Validate, logger *zap.Logger) *ConfigurationService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigurationService{repo: repo, cache: cache, ttl: ttl, validator: validate, logger: logger, now: time.Now}
}

// Get returns the singleton. A missing document reads as empty vocabularies.
func (s *ConfigurationService) Get(ctx context.Context) (*models.GlobalConfig, error) {
	var cached models.GlobalConfig
	if s.cache.Get(ctx, configCacheKey, &cached) {
		return &cached, nil
	}

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internalError(err, "failed to load configuration")
		}
		s.logger.Debug("global config not found, using empty defaults")
		cfg = models.EmptyGlobalConfig()
	}

	s.cache.Set(ctx, configCacheKey, cfg, s.ttl)
	return cfg, nil
}

// Update replaces the singleton and drops cached copies.
func (s *ConfigurationService) Update(ctx context.Context, req dto.UpdateGlobalConfigRequest) (*models.GlobalConfig, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	cfg := &models.GlobalConfig{
		ID:                     models.GlobalConfigID,
		Tags:                   dedupe(req.Tags),
		CommunicationTypes:     dedupe(req.CommunicationTypes),
		TaskStatuses:           dedupe(req.TaskStatuses),
		DefaultReminderDays:    req.DefaultReminderDays,
		StudentStatusSortOrder: dedupe(req.StudentStatusSortOrder),
		UpdatedAt:              s.now().UTC(),
	}
	if err := s.repo.Put(ctx, cfg); err != nil {
		return nil, internalError(err, "failed to update configuration")
	}

	s.cache.Invalidate(ctx, configCachePattern)
	s.logger.Info("global config updated", zap.Int("tags", len(cfg.Tags)), zap.Int("statuses", len(cfg.StudentStatusSortOrder)))
	return cfg, nil
}
