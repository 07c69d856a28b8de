package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
)

type interactionRepository interface {
	List(ctx context.Context, studentID string) ([]models.Interaction, error)
	Create(ctx context.Context, item *models.Interaction) error
}

// InteractionService appends to a student's activity history.
type InteractionService struct {
	repo      interactionRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

func NewInteractionService(repo interactionRepository, validate *validator.Validate, logger *zap.Logger) *InteractionService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InteractionService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

func (s *InteractionService) List(ctx context.Context, studentID string) ([]models.Interaction, error) {
	items, err := s.repo.List(ctx, studentID)
	if err != nil {
		return nil, internalError(err, "failed to list interactions")
	}
	return items, nil
}

func (s *InteractionService) Create(ctx context.Context, req dto.CreateInteractionRequest) (*models.Interaction, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	item := &models.Interaction{
		ID:          uuid.NewString(),
		StudentID:   req.StudentID,
		Type:        models.InteractionType(req.Type),
		Description: req.Description,
		Timestamp:   s.now().UTC(),
		Metadata:    req.Metadata,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, internalError(err, "failed to record interaction")
	}
	return item, nil
}
