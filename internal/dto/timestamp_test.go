package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

func TestFormatTimestamp(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2024, 3, 1, 16, 30, 0, 123456789, jakarta)

	assert.Equal(t, "2024-03-01T09:30:00.123Z", FormatTimestamp(ts))
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-03-01T16:30:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), ts)

	ts, err = ParseTimestamp("2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), ts)

	_, err = ParseTimestamp("yesterday")
	assert.Error(t, err)
	_, err = ParseTimestamp("  ")
	assert.Error(t, err)
}

func TestStudentToWireDefaults(t *testing.T) {
	out := StudentToWire(&models.Student{ID: "s1", Name: "Ada", ApplicationStatus: models.StatusApplying})

	assert.Equal(t, []string{}, out.Tags)
	assert.Equal(t, "Applying", out.ApplicationStatus)
	assert.Empty(t, out.LastActive)
}

func TestUsersToSummariesFallsBackToEmail(t *testing.T) {
	out := UsersToSummaries([]models.User{
		{ID: "u1", Email: "a@example.com", Role: models.RoleUser},
		{ID: "u2", Email: "b@example.com", Name: "Bea", Role: models.RoleAdmin},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "a@example.com", out[0].Name)
	assert.Equal(t, "Bea", out[1].Name)
}
