package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

const statsCacheKey = "stats:students"

type studentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByCode(ctx context.Context, code string) (*models.Student, error)
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
}

// StudentService exposes single-student lookups and directory statistics.
type StudentService struct {
	repo     studentRepository
	cache    *CacheService
	statsTTL time.Duration
	logger   *zap.Logger
	tracer   trace.Tracer
}

func NewStudentService(repo studentRepository, cache *CacheService, statsTTL time.Duration, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{
		repo:     repo,
		cache:    cache,
		statsTTL: statsTTL,
		logger:   logger,
		tracer:   otel.Tracer("github.com/noah-isme/admissions-crm-api/internal/service/student"),
	}
}

// Get resolves id as a human-facing student code first, then as a document id.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByCode(ctx, id)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, internalError(err, "failed to fetch student")
	}

	student, err = s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, internalError(err, "failed to fetch student")
	}
	return student, nil
}

// Stats counts students per pipeline status. Every known status is present even at zero and
// students without a status count as Prospect.
func (s *StudentService) Stats(ctx context.Context) (*dto.StudentStatsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "students.stats")
	defer span.End()

	var cached dto.StudentStatsResponse
	if s.cache.Get(ctx, statsCacheKey, &cached) {
		return &cached, nil
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, internalError(err, "failed to compute student stats")
	}

	summary := make(map[string]int, len(models.ApplicationStatuses)+1)
	for _, status := range models.ApplicationStatuses {
		summary[string(status)] = 0
	}
	total := 0
	for _, c := range counts {
		status := c.Status
		if status == "" {
			status = string(models.StatusProspect)
		}
		summary[status] += c.Count
		total += c.Count
	}
	summary["total"] = total

	out := &dto.StudentStatsResponse{Summary: summary}
	s.cache.Set(ctx, statsCacheKey, out, s.statsTTL)
	return out, nil
}
