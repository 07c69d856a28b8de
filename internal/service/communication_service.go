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

type communicationRepository interface {
	List(ctx context.Context, studentID string) ([]models.Communication, error)
	Create(ctx context.Context, item *models.Communication) error
}

// CommunicationService appends to the communications log.
type CommunicationService struct {
	repo      communicationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

func NewCommunicationService(repo communicationRepository, validate *validator.Validate, logger *zap.Logger) *CommunicationService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommunicationService{repo: repo, validator: validate, logger: logger}
}

func (s *CommunicationService) List(ctx context.Context, studentID string) ([]models.Communication, error) {
	items, err := s.repo.List(ctx, studentID)
	if err != nil {
		return nil, internalError(err, "failed to list communications")
	}
	return items, nil
}

// Create logs a communication. The occurrence timestamp comes from the caller; the logging
// actor is always the authenticated user.
func (s *CommunicationService) Create(ctx context.Context, actor string, req dto.CreateCommunicationRequest) (*models.Communication, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}
	ts, err := dto.ParseTimestamp(req.Timestamp)
	if err != nil {
		return nil, invalidField("timestamp must be an ISO-8601 timestamp")
	}

	item := &models.Communication{
		ID:        uuid.NewString(),
		StudentID: req.StudentID,
		Channel:   models.CommunicationChannel(req.Channel),
		Summary:   req.Summary,
		Timestamp: ts.Truncate(time.Millisecond),
		LoggedBy:  actor,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, internalError(err, "failed to log communication")
	}
	return item, nil
}
