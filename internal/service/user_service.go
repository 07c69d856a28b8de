package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/internal/repository"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

type userRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

// UserService manages staff profiles keyed by the identity provider subject.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// Register creates the caller's profile. The name defaults to the email local part and the
// role to user. Only the first profile ever created may claim the admin role.
func (s *UserService) Register(ctx context.Context, principal *models.Principal, req dto.CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}
	if strings.TrimSpace(principal.Email) == "" {
		return nil, invalidField("email claim is required")
	}

	_, err := s.repo.FindByID(ctx, principal.UserID)
	if err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "user already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, internalError(err, "failed to check user")
	}

	role := models.RoleUser
	if req.Role == string(models.RoleAdmin) {
		existing, err := s.repo.List(ctx)
		if err != nil {
			return nil, internalError(err, "failed to check existing users")
		}
		if len(existing) > 0 {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "admin role cannot be self-assigned")
		}
		role = models.RoleAdmin
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.SplitN(principal.Email, "@", 2)[0]
	}

	user := &models.User{
		ID:        principal.UserID,
		Email:     principal.Email,
		Name:      name,
		Role:      role,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "user already exists")
		}
		return nil, internalError(err, "failed to create user")
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *UserService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, internalError(err, "failed to fetch user")
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list users")
	}
	return users, nil
}

// RoleOf resolves the stored role of a user. Unknown users have no role.
func (s *UserService) RoleOf(ctx context.Context, userID string) (models.UserRole, error) {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
