package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

type noteRepository interface {
	List(ctx context.Context, studentID string) ([]models.Note, error)
	FindByID(ctx context.Context, id string) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, id string, changes models.NoteChanges) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

// NoteService manages rich-text notes. Only a note's author may change or remove it.
type NoteService struct {
	repo      noteRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    *zap.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

func NewNoteService(repo noteRepository, validate *validator.Validate, logger *zap.Logger) *NoteService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
		tracer:    otel.Tracer("github.com/noah-isme/admissions-crm-api/internal/service/note"),
		now:       time.Now,
	}
}

func (s *NoteService) List(ctx context.Context, studentID string) ([]models.Note, error) {
	notes, err := s.repo.List(ctx, studentID)
	if err != nil {
		return nil, internalError(err, "failed to list notes")
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, actor string, req dto.CreateNoteRequest) (*models.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.create")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}
	content, err := s.sanitize(req.Content)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	note := &models.Note{
		ID:         uuid.NewString(),
		StudentID:  req.StudentID,
		Content:    content,
		Visibility: models.NoteVisibility(req.Visibility),
		CreatedBy:  actor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		span.RecordError(err)
		return nil, internalError(err, "failed to create note")
	}
	span.SetAttributes(attribute.String("note.id", note.ID))
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, actor, id string, req dto.UpdateNoteRequest) (*models.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.update")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}
	if req.Content == nil && req.Visibility == nil {
		return nil, invalidField("content or visibility is required")
	}

	changes := models.NoteChanges{UpdatedAt: s.now().UTC()}
	if req.Content != nil {
		content, err := s.sanitize(*req.Content)
		if err != nil {
			return nil, err
		}
		changes.Content = &content
	}
	if req.Visibility != nil {
		visibility := models.NoteVisibility(*req.Visibility)
		changes.Visibility = &visibility
	}

	if _, err := s.owned(ctx, actor, id); err != nil {
		return nil, err
	}
	note, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "note not found")
		}
		return nil, internalError(err, "failed to update note")
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "notes.delete")
	defer span.End()

	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "note not found")
		}
		return internalError(err, "failed to delete note")
	}
	s.logger.Info("note deleted", zap.String("note_id", id), zap.String("actor", actor))
	return nil
}

func (s *NoteService) owned(ctx context.Context, actor, id string) (*models.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "note not found")
		}
		return nil, internalError(err, "failed to fetch note")
	}
	if actor == "" || note.CreatedBy != actor {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the author can modify this note")
	}
	return note, nil
}

func (s *NoteService) sanitize(raw string) (string, error) {
	content := strings.TrimSpace(s.sanitizer.Sanitize(raw))
	if content == "" {
		return "", invalidField("content is empty after sanitizing")
	}
	return content, nil
}
