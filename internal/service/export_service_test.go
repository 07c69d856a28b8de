package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

func TestExportStudentsCSV(t *testing.T) {
	store := directory()
	svc := NewExportService(store, nil)
	svc.now = fixedClock(time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC))

	file, err := svc.ExportStudents(context.Background(), dto.StudentExportRequest{
		StudentSearchRequest: dto.StudentSearchRequest{Country: "Kenya", Cursor: "ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, "students-20240701-080000.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Nil(t, store.lastQuery.After)
	assert.Equal(t, MaxExportRows, store.lastQuery.Limit)

	records, err := csv.NewReader(bytes.NewReader(file.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, file.Rows+1)
	assert.Equal(t, "Student ID", records[0][0])
	for _, row := range records[1:] {
		assert.Equal(t, "Kenya", row[3])
	}
}

func TestExportStudentsPDF(t *testing.T) {
	svc := NewExportService(directory(), nil)

	file, err := svc.ExportStudents(context.Background(), dto.StudentExportRequest{Format: "PDF"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF")))
}

func TestExportStudentsUnknownFormat(t *testing.T) {
	store := directory()
	svc := NewExportService(store, nil)

	_, err := svc.ExportStudents(context.Background(), dto.StudentExportRequest{Format: "xlsx"})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation.Code))
	assert.Zero(t, store.searchCalls)
}
