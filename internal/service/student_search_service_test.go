package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

var searchConfig = &models.GlobalConfig{
	ID:                     models.GlobalConfigID,
	Tags:                   []string{"STEM", "Athlete", "Scholarship"},
	StudentStatusSortOrder: []string{"Prospect", "Applying", "Submitted", "Admitted", "Rejected", "Enrolled"},
}

func directory() *memoryStudents {
	countries := []string{"USA", "Canada", "Kenya"}
	tags := [][]string{{"STEM"}, {"Athlete"}, {"STEM", "Scholarship"}, {}}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	store := &memoryStudents{}
	for i := 0; i < 53; i++ {
		store.students = append(store.students, models.Student{
			ID:                fmt.Sprintf("s%03d", i),
			Name:              fmt.Sprintf("%s %02d", []string{"Alan", "Alice", "Bob", "Carla"}[i%4], i),
			Country:           countries[i%3],
			ApplicationStatus: models.ApplicationStatuses[i%len(models.ApplicationStatuses)],
			Tags:              tags[i%4],
			LastActive:        base.Add(time.Duration(i%7) * time.Hour),
		})
	}
	return store
}

func newSearchService(store *memoryStudents) *StudentSearchService {
	return NewStudentSearchService(store, &memoryConfig{cfg: searchConfig}, nil, nil)
}

func TestSearchResultsSatisfyFilters(t *testing.T) {
	store := directory()
	svc := newSearchService(store)

	req := dto.StudentSearchRequest{Country: "USA", Tags: []string{"STEM, Athlete", "STEM"}, Status: "Admitted"}
	res, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Students)

	assert.Equal(t, []string{"STEM", "Athlete"}, store.lastQuery.Filter.Tags)
	for _, s := range res.Students {
		assert.Equal(t, "USA", s.Country)
		assert.Equal(t, "Admitted", s.ApplicationStatus)
		assert.True(t, containsAny(s.Tags, "STEM", "Athlete"), s.ID)
	}
}

func TestSearchPaginationCoversEveryMatchOnce(t *testing.T) {
	for _, sortField := range []string{"name", "lastActive"} {
		t.Run(sortField, func(t *testing.T) {
			store := directory()
			svc := newSearchService(store)

			seen := map[string]bool{}
			var prev *dto.StudentResponse
			cursor := ""
			pages := 0
			for {
				res, err := svc.Search(context.Background(), dto.StudentSearchRequest{Sort: sortField, Cursor: cursor})
				require.NoError(t, err)
				pages++
				require.LessOrEqual(t, len(res.Students), SearchPageSize)

				for i := range res.Students {
					s := res.Students[i]
					require.False(t, seen[s.ID], "duplicate %s", s.ID)
					seen[s.ID] = true
					if prev != nil && sortField == "name" {
						assert.True(t, prev.Name < s.Name || (prev.Name == s.Name && prev.ID < s.ID))
					}
					prev = &res.Students[i]
				}

				if !res.Pagination.HasNextPage {
					assert.Nil(t, res.Pagination.NextCursor)
					break
				}
				require.Len(t, res.Students, SearchPageSize)
				require.NotNil(t, res.Pagination.NextCursor)
				assert.Equal(t, res.Students[len(res.Students)-1].ID, *res.Pagination.NextCursor)
				cursor = *res.Pagination.NextCursor
			}

			assert.Len(t, seen, len(store.students))
			assert.Equal(t, 3, pages)
		})
	}
}

func TestSearchExactPageHasNoNextCursor(t *testing.T) {
	store := directory()
	store.students = store.students[:SearchPageSize]
	svc := newSearchService(store)

	res, err := svc.Search(context.Background(), dto.StudentSearchRequest{})
	require.NoError(t, err)
	assert.Len(t, res.Students, SearchPageSize)
	assert.False(t, res.Pagination.HasNextPage)
	assert.Nil(t, res.Pagination.NextCursor)
	assert.Equal(t, SearchPageSize+1, store.lastQuery.Limit)
}

func TestSearchCursorIsIdempotent(t *testing.T) {
	svc := newSearchService(directory())

	first, err := svc.Search(context.Background(), dto.StudentSearchRequest{Sort: "lastActive"})
	require.NoError(t, err)
	require.NotNil(t, first.Pagination.NextCursor)

	req := dto.StudentSearchRequest{Sort: "lastActive", Cursor: *first.Pagination.NextCursor}
	a, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	b, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, first.Students[0].ID, a.Students[0].ID)
}

func TestSearchInvalidCursor(t *testing.T) {
	store := directory()
	svc := newSearchService(store)

	res, err := svc.Search(context.Background(), dto.StudentSearchRequest{Cursor: "does-not-exist"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidCursor.Code))
	assert.Equal(t, 0, store.searchCalls)
}

func TestSearchCursorWithoutSortValue(t *testing.T) {
	store := directory()
	store.students = append(store.students, models.Student{ID: "s999", Name: "Zed", Country: "USA"})
	svc := newSearchService(store)

	res, err := svc.Search(context.Background(), dto.StudentSearchRequest{Sort: "lastActive", Cursor: "s999"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidCursor.Code))
	assert.Equal(t, "cursor student has no lastActive value", err.Error())
	assert.Equal(t, 0, store.searchCalls)

	res, err = svc.Search(context.Background(), dto.StudentSearchRequest{Sort: "name", Cursor: "s999"})
	require.NoError(t, err)
	assert.Empty(t, res.Students)
}

func TestSearchSortFallsBackToName(t *testing.T) {
	store := directory()
	svc := newSearchService(store)

	_, err := svc.Search(context.Background(), dto.StudentSearchRequest{Sort: "email; drop"})
	require.NoError(t, err)
	assert.Equal(t, models.SortByName, store.lastQuery.Sort)
}

func TestSearchPrefixOnlyAppliesToNameSort(t *testing.T) {
	store := directory()
	svc := newSearchService(store)

	res, err := svc.Search(context.Background(), dto.StudentSearchRequest{Country: "USA", Search: "Al"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Students)
	for _, s := range res.Students {
		assert.Equal(t, "USA", s.Country)
		assert.Regexp(t, "^Al", s.Name)
	}

	_, err = svc.Search(context.Background(), dto.StudentSearchRequest{Search: "Al", Sort: "lastActive"})
	require.NoError(t, err)
	assert.Empty(t, store.lastQuery.Prefix)
}

func TestSearchFacetsIgnoreStatusFilter(t *testing.T) {
	store := directory()
	store.students = append(store.students, models.Student{ID: "x1", Name: "Zed", Country: "USA", ApplicationStatus: "Waitlisted", Tags: []string{"STEM"}})
	svc := newSearchService(store)

	res, err := svc.Search(context.Background(), dto.StudentSearchRequest{Status: "Enrolled"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Prospect", "Applying", "Submitted", "Admitted", "Rejected", "Enrolled", "Waitlisted"}, res.FilterOptions.Statuses)
	assert.Equal(t, []string{"Canada", "Kenya", "USA"}, res.FilterOptions.Countries)
	assert.Equal(t, searchConfig.Tags, res.FilterOptions.Tags)
}

func TestSearchWithoutGlobalConfig(t *testing.T) {
	svc := NewStudentSearchService(directory(), NewConfigurationService(&memoryConfig{}, nil, 0, nil, nil), nil, nil)

	res, err := svc.Search(context.Background(), dto.StudentSearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{}, res.FilterOptions.Tags)
	assert.Equal(t, []string{"Admitted", "Applying", "Enrolled", "Prospect", "Rejected", "Submitted"}, res.FilterOptions.Statuses)
}

func TestSearchStoreFailure(t *testing.T) {
	store := directory()
	store.failSearch = true
	svc := newSearchService(store)

	_, err := svc.Search(context.Background(), dto.StudentSearchRequest{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInternal.Code))

	store.failSearch = false
	store.failFacets = true
	_, err = svc.Search(context.Background(), dto.StudentSearchRequest{})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInternal.Code))
}

func TestRankStatuses(t *testing.T) {
	order := []string{"Prospect", "Applying", "Submitted"}

	got := RankStatuses([]string{"Zeta", "Submitted", "alpha", "Prospect", "Beta", "Applying"}, order)
	assert.Equal(t, []string{"Prospect", "Applying", "Submitted", "Beta", "Zeta", "alpha"}, got)

	assert.Equal(t, []string{"b", "c"}, RankStatuses([]string{"c", "b"}, nil))
	assert.Empty(t, RankStatuses(nil, order))
}

func TestParseSortField(t *testing.T) {
	assert.Equal(t, models.SortByLastActive, ParseSortField("lastActive"))
	assert.Equal(t, models.SortByName, ParseSortField("name"))
	assert.Equal(t, models.SortByName, ParseSortField("LASTACTIVE"))
	assert.Equal(t, models.SortByName, ParseSortField(""))
}

func containsAny(tags []string, wanted ...string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if t == w {
				return true
			}
		}
	}
	return false
}
