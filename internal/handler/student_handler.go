package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/internal/service"
	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
	"github.com/noah-isme/admissions-crm-api/pkg/response"
)

type studentSearcher interface {
	Search(ctx context.Context, req dto.StudentSearchRequest) (*dto.StudentSearchResponse, error)
}

type studentReader interface {
	Get(ctx context.Context, id string) (*models.Student, error)
	Stats(ctx context.Context) (*dto.StudentStatsResponse, error)
}

type studentExporter interface {
	ExportStudents(ctx context.Context, req dto.StudentExportRequest) (*service.ExportFile, error)
}

// StudentHandler exposes the student directory.
type StudentHandler struct {
	search   studentSearcher
	students studentReader
	exports  studentExporter
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(search studentSearcher, students studentReader, exports studentExporter) *StudentHandler {
	return &StudentHandler{search: search, students: students, exports: exports}
}

// Search godoc
// @Summary Search the student directory
// @Description Returns 20 students per page after the cursor, plus facet options for the current filters.
// @Tags Students
// @Produce json
// @Param cursor query string false "id of the last student on the previous page"
// @Param country query string false "Exact country"
// @Param tags query []string false "Tags, repeated or comma-separated, any match" collectionFormat(multi)
// @Param status query string false "Application status"
// @Param search query string false "Name prefix, applies to name sort only"
// @Param sort query string false "name or lastActive"
// @Success 200 {object} dto.StudentSearchResponse
// @Failure 400 {object} response.ErrorBody
// @Security BearerAuth
// @Router /students/search [get]
func (h *StudentHandler) Search(c *gin.Context) {
	var req dto.StudentSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query"))
		return
	}
	result, err := h.search.Search(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Stats godoc
// @Summary Count students per application status
// @Tags Students
// @Produce json
// @Success 200 {object} dto.StudentStatsResponse
// @Security BearerAuth
// @Router /students/stats [get]
func (h *StudentHandler) Stats(c *gin.Context) {
	stats, err := h.students.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// Get godoc
// @Summary Get a student
// @Tags Students
// @Produce json
// @Param id path string true "Student code or document id"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.StudentToWire(student))
}

// Export godoc
// @Summary Export the filtered directory
// @Tags Students
// @Produce text/csv
// @Produce application/pdf
// @Param country query string false "Exact country"
// @Param tags query []string false "Tags, repeated or comma-separated" collectionFormat(multi)
// @Param status query string false "Application status"
// @Param search query string false "Name prefix"
// @Param sort query string false "name or lastActive"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /students/export [get]
func (h *StudentHandler) Export(c *gin.Context) {
	var req dto.StudentExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query"))
		return
	}
	file, err := h.exports.ExportStudents(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", file.Filename))
	c.Header("X-Export-Rows", strconv.Itoa(file.Rows))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
