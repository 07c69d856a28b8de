package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/pkg/export"
)

// MaxExportRows caps a single directory export.
const MaxExportRows = 5000

type studentLister interface {
	Search(ctx context.Context, q models.StudentQuery) ([]models.Student, error)
}

// TableRenderer turns a table into a downloadable document.
type TableRenderer interface {
	Render(table export.Table) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportFile is a rendered export ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
}

var studentExportColumns = []export.Column{
	{Key: "studentId", Header: "Student ID", Width: 1.2},
	{Key: "name", Header: "Name", Width: 2},
	{Key: "email", Header: "Email", Width: 2.4},
	{Key: "country", Header: "Country", Width: 1.2},
	{Key: "grade", Header: "Grade", Width: 0.7},
	{Key: "status", Header: "Status", Width: 1},
	{Key: "tags", Header: "Tags", Width: 2},
	{Key: "lastActive", Header: "Last Active", Width: 1.8},
	{Key: "communications", Header: "Comms", Width: 0.7},
	{Key: "pendingTasks", Header: "Open Tasks", Width: 0.8},
}

// ExportService renders the filtered student directory as CSV or PDF.
type ExportService struct {
	students  studentLister
	renderers map[string]TableRenderer
	logger    *zap.Logger
	now       func() time.Time
}

func NewExportService(students studentLister, logger *zap.Logger, renderers ...TableRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(renderers) == 0 {
		renderers = []TableRenderer{export.NewCSVExporter(), export.NewPDFExporter()}
	}
	byFormat := make(map[string]TableRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Extension()] = r
	}
	return &ExportService{students: students, renderers: byFormat, logger: logger, now: time.Now}
}

// ExportStudents applies the search filters, sort and name prefix, ignoring any cursor.
func (s *ExportService) ExportStudents(ctx context.Context, req dto.StudentExportRequest) (*ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = "csv"
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, invalidField(fmt.Sprintf("format must be one of: %s", strings.Join(s.formats(), " ")))
	}

	sortField := ParseSortField(req.Sort)
	query := models.StudentQuery{
		Filter: models.StudentFilter{Country: req.Country, Status: req.Status, Tags: splitList(req.Tags)},
		Sort:   sortField,
		Limit:  MaxExportRows,
	}
	if sortField == models.SortByName {
		query.Prefix = req.Search
	}

	students, err := s.students.Search(ctx, query)
	if err != nil {
		return nil, internalError(err, "failed to load students for export")
	}

	table := export.Table{
		Title:   "Student Directory",
		Columns: studentExportColumns,
		Rows:    make([]map[string]string, 0, len(students)),
	}
	for i := range students {
		table.Rows = append(table.Rows, studentRow(&students[i]))
	}

	body, err := renderer.Render(table)
	if err != nil {
		return nil, internalError(err, "failed to render export")
	}

	s.logger.Info("student export rendered", zap.String("format", format), zap.Int("rows", len(students)))
	return &ExportFile{
		Filename:    fmt.Sprintf("students-%s.%s", s.now().UTC().Format("20060102-150405"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
		Rows:        len(students),
	}, nil
}

func (s *ExportService) formats() []string {
	out := make([]string, 0, len(s.renderers))
	for _, f := range []string{"csv", "pdf"} {
		if _, ok := s.renderers[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

func studentRow(st *models.Student) map[string]string {
	return map[string]string{
		"studentId":      st.StudentCode,
		"name":           st.Name,
		"email":          st.Email,
		"country":        st.Country,
		"grade":          st.Grade,
		"status":         string(st.ApplicationStatus),
		"tags":           strings.Join(st.Tags, ", "),
		"lastActive":     dto.FormatTimestamp(st.LastActive),
		"communications": strconv.Itoa(st.CountCommunications),
		"pendingTasks":   strconv.Itoa(st.CountPendingTasks),
	}
}
