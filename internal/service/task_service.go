package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

type taskRepository interface {
	List(ctx context.Context, studentID string) ([]models.Task, error)
	FindByID(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus, updatedAt time.Time) (*models.Task, error)
}

// TaskService manages follow-up tasks.
type TaskService struct {
	repo      taskRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

func NewTaskService(repo taskRepository, validate *validator.Validate, logger *zap.Logger) *TaskService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

func (s *TaskService) List(ctx context.Context, studentID string) ([]models.Task, error) {
	tasks, err := s.repo.List(ctx, studentID)
	if err != nil {
		return nil, internalError(err, "failed to list tasks")
	}
	return tasks, nil
}

// Create stores a new pending task authored by actor.
func (s *TaskService) Create(ctx context.Context, actor string, req dto.CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}
	due, err := dto.ParseTimestamp(req.DueDate)
	if err != nil {
		return nil, invalidField("dueDate must be an ISO-8601 timestamp")
	}

	now := s.now().UTC()
	task := &models.Task{
		ID:          uuid.NewString(),
		StudentID:   req.StudentID,
		Description: req.Description,
		DueDate:     due,
		AssignedTo:  req.AssignedTo,
		Status:      models.TaskPending,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, internalError(err, "failed to create task")
	}
	s.logger.Info("task created", zap.String("task_id", task.ID), zap.String("student_id", task.StudentID))
	return task, nil
}

// UpdateStatus changes the status when actor created or is assigned the task. Repeating the
// same update leaves the task in the same status.
func (s *TaskService) UpdateStatus(ctx context.Context, actor, id string, req dto.UpdateTaskStatusRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, internalError(err, "failed to fetch task")
	}
	if !task.CanBeUpdatedBy(actor) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the creator or assignee can update this task")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, models.TaskStatus(req.Status), s.now().UTC())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, internalError(err, "failed to update task")
	}
	return updated, nil
}
