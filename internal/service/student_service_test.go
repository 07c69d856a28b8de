package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/internal/repository"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

func newRedisCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheService(repository.NewCacheRepository(client, "crm"), NewMetricsService(), nil, true), server
}

func TestStudentGetByCodeThenID(t *testing.T) {
	store := &memoryStudents{students: []models.Student{
		{ID: "doc-1", StudentCode: "UG-100001", Name: "Ada"},
		{ID: "doc-2", Name: "Ben"},
	}}
	svc := NewStudentService(store, nil, 0, nil)

	byCode, err := svc.Get(context.Background(), "UG-100001")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", byCode.ID)

	byID, err := svc.Get(context.Background(), "doc-2")
	require.NoError(t, err)
	assert.Equal(t, "Ben", byID.Name)

	_, err = svc.Get(context.Background(), "nobody")
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound.Code))
}

func TestStudentStats(t *testing.T) {
	store := &memoryStudents{students: []models.Student{
		{ID: "1", ApplicationStatus: models.StatusApplying},
		{ID: "2", ApplicationStatus: models.StatusApplying},
		{ID: "3", ApplicationStatus: ""},
		{ID: "4", ApplicationStatus: models.StatusProspect},
		{ID: "5", ApplicationStatus: "Deferred"},
	}}
	svc := NewStudentService(store, nil, 0, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"Prospect":  2,
		"Applying":  2,
		"Submitted": 0,
		"Admitted":  0,
		"Rejected":  0,
		"Enrolled":  0,
		"Deferred":  1,
		"total":     5,
	}, stats.Summary)
}

func TestStudentStatsCached(t *testing.T) {
	cache, server := newRedisCache(t)
	store := &memoryStudents{students: []models.Student{{ID: "1", ApplicationStatus: models.StatusEnrolled}}}
	svc := NewStudentService(store, cache, time.Minute, nil)

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, server.Exists("crm:"+statsCacheKey))

	store.students = append(store.students, models.Student{ID: "2", ApplicationStatus: models.StatusEnrolled})
	second, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	server.FastForward(2 * time.Minute)
	third, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, third.Summary["total"])
}

func TestStudentStatsStoreFailure(t *testing.T) {
	svc := NewStudentService(&memoryStudents{failSearch: true}, nil, 0, nil)

	_, err := svc.Stats(context.Background())
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInternal.Code))
}
