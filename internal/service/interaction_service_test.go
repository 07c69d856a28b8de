package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

func TestInteractionCreateStampsServerTime(t *testing.T) {
	repo := &memoryInteractions{}
	svc := NewInteractionService(repo, nil, nil)
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	item, err := svc.Create(context.Background(), dto.CreateInteractionRequest{
		StudentID: "student-1",
		Type:      "AI question",
		Metadata:  map[string]interface{}{"question": "deadline?"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.InteractionAIQuestion, item.Type)
	assert.Equal(t, now, item.Timestamp)

	listed, err := svc.List(context.Background(), "student-1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestInteractionRejectsUnknownType(t *testing.T) {
	repo := &memoryInteractions{}
	svc := NewInteractionService(repo, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateInteractionRequest{StudentID: "student-1", Type: "logout"})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation.Code))
	assert.Empty(t, repo.items)
}
