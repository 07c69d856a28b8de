package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

var counsellor = &models.Principal{UserID: "auth0|42", Email: "dana.lee@school.test"}

func TestUserRegisterDefaults(t *testing.T) {
	repo := &memoryUsers{}
	svc := NewUserService(repo, nil, nil)

	user, err := svc.Register(context.Background(), counsellor, dto.CreateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, "dana.lee", user.Name)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "auth0|42", user.ID)

	_, err = svc.Register(context.Background(), counsellor, dto.CreateUserRequest{Name: "Dana"})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrConflict.Code))
	assert.Len(t, repo.users, 1)
}

func TestUserRegisterAdminOnlyFirst(t *testing.T) {
	repo := &memoryUsers{}
	svc := NewUserService(repo, nil, nil)

	admin, err := svc.Register(context.Background(), counsellor, dto.CreateUserRequest{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	other := &models.Principal{UserID: "auth0|43", Email: "sam@school.test"}
	_, err = svc.Register(context.Background(), other, dto.CreateUserRequest{Role: "admin"})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrForbidden.Code))
}

func TestUserRegisterRequiresEmailClaim(t *testing.T) {
	repo := &memoryUsers{}
	svc := NewUserService(repo, nil, nil)

	_, err := svc.Register(context.Background(), &models.Principal{UserID: "auth0|99"}, dto.CreateUserRequest{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation.Code))
	assert.Equal(t, "email claim is required", err.Error())
	assert.Empty(t, repo.users)
}

func TestUserRegisterDuplicateRace(t *testing.T) {
	svc := NewUserService(&memoryUsers{raceOnCreate: true}, nil, nil)

	_, err := svc.Register(context.Background(), counsellor, dto.CreateUserRequest{})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrConflict.Code))
}

func TestUserMeAndRole(t *testing.T) {
	repo := &memoryUsers{users: []models.User{{ID: "auth0|42", Email: "dana.lee@school.test", Role: models.RoleAdmin}}}
	svc := NewUserService(repo, nil, nil)

	me, err := svc.Me(context.Background(), "auth0|42")
	require.NoError(t, err)
	assert.Equal(t, "dana.lee@school.test", me.Email)

	role, err := svc.RoleOf(context.Background(), "auth0|42")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	_, err = svc.Me(context.Background(), "ghost")
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound.Code))
}
