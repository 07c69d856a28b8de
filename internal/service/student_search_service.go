package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

// SearchPageSize is the fixed number of students per directory page.
const SearchPageSize = 20

type studentSearchRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Search(ctx context.Context, q models.StudentQuery) ([]models.Student, error)
	Facets(ctx context.Context, filter models.StudentFilter) (models.StudentFacets, error)
}

type globalConfigReader interface {
	Get(ctx context.Context) (*models.GlobalConfig, error)
}

// StudentSearchService serves the paginated, faceted student directory.
type StudentSearchService struct {
	students studentSearchRepository
	config   globalConfigReader
	metrics  *MetricsService
	logger   *zap.Logger
	tracer   trace.Tracer
}

func NewStudentSearchService(students studentSearchRepository, config globalConfigReader, metrics *MetricsService, logger *zap.Logger) *StudentSearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentSearchService{
		students: students,
		config:   config,
		metrics:  metrics,
		logger:   logger,
		tracer:   otel.Tracer("github.com/noah-isme/admissions-crm-api/internal/service/student_search"),
	}
}

// Search returns one page of students after req.Cursor plus the facet options for the
// current country and tag filters. The call is read-only.
func (s *StudentSearchService) Search(ctx context.Context, req dto.StudentSearchRequest) (*dto.StudentSearchResponse, error) {
	ctx, span := s.tracer.Start(ctx, "students.search")
	defer span.End()

	query := s.buildQuery(req)
	query.Limit = SearchPageSize + 1
	span.SetAttributes(
		attribute.String("search.sort", string(query.Sort)),
		attribute.Bool("search.has_cursor", req.Cursor != ""),
	)

	if req.Cursor != "" {
		after, err := s.students.FindByID(ctx, req.Cursor)
		if err != nil {
			span.RecordError(err)
			if errors.Is(err, mongo.ErrNoDocuments) {
				span.SetStatus(codes.Error, "invalid cursor")
				return nil, appErrors.Wrap(err, appErrors.ErrInvalidCursor.Code, appErrors.ErrInvalidCursor.Status, "invalid cursor")
			}
			span.SetStatus(codes.Error, "cursor lookup failed")
			return nil, internalError(err, "failed to resolve cursor")
		}
		if !after.HasSortValue(query.Sort) {
			span.SetStatus(codes.Error, "cursor missing sort field")
			return nil, appErrors.Clone(appErrors.ErrInvalidCursor, fmt.Sprintf("cursor student has no %s value", query.Sort))
		}
		query.After = after
	}

	rows, err := s.students.Search(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return nil, internalError(err, "failed to search students")
	}

	hasNext := len(rows) > SearchPageSize
	if hasNext {
		rows = rows[:SearchPageSize]
	}
	var nextCursor *string
	if hasNext {
		last := rows[len(rows)-1].ID
		nextCursor = &last
	}

	facets, err := s.students.Facets(ctx, query.Filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "facets failed")
		return nil, internalError(err, "failed to compute filter options")
	}
	cfg, err := s.config.Get(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "config failed")
		return nil, err
	}

	s.metrics.ObserveSearchPage(string(query.Sort), len(rows), hasNext)
	span.SetAttributes(attribute.Int("search.results", len(rows)))

	tags := cfg.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.StudentSearchResponse{
		Students:   dto.StudentsToWire(rows),
		Pagination: dto.Pagination{HasNextPage: hasNext, NextCursor: nextCursor},
		FilterOptions: dto.FilterOptions{
			Tags:      tags,
			Statuses:  RankStatuses(facets.Statuses, cfg.StudentStatusSortOrder),
			Countries: facets.Countries,
		},
	}, nil
}

// buildQuery normalises request parameters. Unknown sort fields fall back to name, and a
// search prefix is dropped unless the directory is sorted by name.
func (s *StudentSearchService) buildQuery(req dto.StudentSearchRequest) models.StudentQuery {
	query := models.StudentQuery{
		Filter: models.StudentFilter{
			Country: req.Country,
			Status:  req.Status,
			Tags:    splitList(req.Tags),
		},
		Sort: ParseSortField(req.Sort),
	}
	if req.Search != "" {
		if query.Sort == models.SortByName {
			query.Prefix = req.Search
		} else {
			s.logger.Debug("search prefix ignored for non-name sort", zap.String("sort", string(query.Sort)))
		}
	}
	return query
}

// ParseSortField maps a requested sort onto the allow-list, defaulting to name.
func ParseSortField(raw string) models.StudentSortField {
	switch models.StudentSortField(raw) {
	case models.SortByLastActive:
		return models.SortByLastActive
	default:
		return models.SortByName
	}
}

// RankStatuses orders statuses by their position in order. Statuses missing from order come
// after all ranked ones, in byte-wise lexicographic order.
func RankStatuses(statuses []string, order []string) []string {
	rank := make(map[string]int, len(order))
	for i, status := range order {
		if _, seen := rank[status]; !seen {
			rank[status] = i
		}
	}

	out := append([]string{}, statuses...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iRanked := rank[out[i]]
		rj, jRanked := rank[out[j]]
		switch {
		case iRanked && jRanked:
			return ri < rj
		case iRanked != jRanked:
			return iRanked
		default:
			return out[i] < out[j]
		}
	})
	return out
}
