package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

var errStoreDown = errors.New("store unavailable")

func notFound(kind, id string) error {
	return fmt.Errorf("find %s %s: %w", kind, id, mongo.ErrNoDocuments)
}

// memoryStudents is an in-memory stand-in for the student collection that honours the same
// ordering and keyset semantics as the Mongo query.
type memoryStudents struct {
	students    []models.Student
	searchCalls int
	failSearch  bool
	failFacets  bool
	lastQuery   models.StudentQuery
}

func (m *memoryStudents) FindByID(ctx context.Context, id string) (*models.Student, error) {
	for i := range m.students {
		if m.students[i].ID == id {
			s := m.students[i]
			return &s, nil
		}
	}
	return nil, notFound("student", id)
}

func (m *memoryStudents) FindByCode(ctx context.Context, code string) (*models.Student, error) {
	for i := range m.students {
		if m.students[i].StudentCode != "" && m.students[i].StudentCode == code {
			s := m.students[i]
			return &s, nil
		}
	}
	return nil, notFound("student code", code)
}

func matches(s models.Student, f models.StudentFilter) bool {
	if f.Country != "" && s.Country != f.Country {
		return false
	}
	if f.Status != "" && string(s.ApplicationStatus) != f.Status {
		return false
	}
	if len(f.Tags) == 0 {
		return true
	}
	for _, want := range f.Tags {
		for _, have := range s.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

func less(a, b models.Student, field models.StudentSortField) bool {
	if field == models.SortByLastActive {
		if !a.LastActive.Equal(b.LastActive) {
			return a.LastActive.Before(b.LastActive)
		}
		return a.ID < b.ID
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

func (m *memoryStudents) Search(ctx context.Context, q models.StudentQuery) ([]models.Student, error) {
	m.searchCalls++
	m.lastQuery = q
	if m.failSearch {
		return nil, errStoreDown
	}
	out := make([]models.Student, 0)
	for _, s := range m.students {
		if !matches(s, q.Filter) {
			continue
		}
		if q.Prefix != "" && !strings.HasPrefix(s.Name, q.Prefix) {
			continue
		}
		if q.After != nil && !less(*q.After, s, q.Sort) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j], q.Sort) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *memoryStudents) Facets(ctx context.Context, f models.StudentFilter) (models.StudentFacets, error) {
	if m.failFacets {
		return models.StudentFacets{}, errStoreDown
	}
	countries := map[string]struct{}{}
	statuses := map[string]struct{}{}
	for _, s := range m.students {
		if !matches(s, models.StudentFilter{Country: f.Country, Tags: f.Tags}) {
			continue
		}
		if s.Country != "" {
			countries[s.Country] = struct{}{}
		}
		if s.ApplicationStatus != "" {
			statuses[string(s.ApplicationStatus)] = struct{}{}
		}
	}
	facets := models.StudentFacets{Countries: keys(countries), Statuses: keys(statuses)}
	sort.Strings(facets.Countries)
	return facets, nil
}

func (m *memoryStudents) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	if m.failSearch {
		return nil, errStoreDown
	}
	counts := map[string]int{}
	for _, s := range m.students {
		counts[string(s.ApplicationStatus)]++
	}
	out := make([]models.StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, models.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

type memoryConfig struct {
	cfg  *models.GlobalConfig
	gets int
	puts int
	fail bool
}

func (m *memoryConfig) Get(ctx context.Context) (*models.GlobalConfig, error) {
	m.gets++
	if m.fail {
		return nil, errStoreDown
	}
	if m.cfg == nil {
		return nil, fmt.Errorf("get global config: %w", mongo.ErrNoDocuments)
	}
	c := *m.cfg
	return &c, nil
}

func (m *memoryConfig) Put(ctx context.Context, cfg *models.GlobalConfig) error {
	m.puts++
	if m.fail {
		return errStoreDown
	}
	c := *cfg
	m.cfg = &c
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
