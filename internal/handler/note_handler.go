package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/pkg/response"
)

type noteService interface {
	List(ctx context.Context, studentID string) ([]models.Note, error)
	Create(ctx context.Context, actor string, req dto.CreateNoteRequest) (*models.Note, error)
	Update(ctx context.Context, actor, id string, req dto.UpdateNoteRequest) (*models.Note, error)
	Delete(ctx context.Context, actor, id string) error
}

// NoteHandler exposes staff note endpoints.
type NoteHandler struct {
	service noteService
}

func NewNoteHandler(service noteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List godoc
// @Summary List notes, newest first
// @Tags Notes
// @Produce json
// @Param studentId query string false "Student id"
// @Success 200 {array} dto.NoteResponse
// @Security BearerAuth
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.service.List(c.Request.Context(), c.Query("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NotesToWire(notes))
}

// Create godoc
// @Summary Create a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body dto.CreateNoteRequest true "Note"
// @Success 201 {object} dto.NoteResponse
// @Security BearerAuth
// @Router /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	principal := requirePrincipal(c)
	if principal == nil {
		return
	}
	var req dto.CreateNoteRequest
	if !bindJSON(c, &req) {
		return
	}
	note, err := h.service.Create(c.Request.Context(), principal.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NoteToWire(note))
}

// Update godoc
// @Summary Edit a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param payload body dto.UpdateNoteRequest true "Changes"
// @Success 200 {object} dto.NoteResponse
// @Failure 403 {object} response.ErrorBody
// @Security BearerAuth
// @Router /notes/{id} [patch]
func (h *NoteHandler) Update(c *gin.Context) {
	principal := requirePrincipal(c)
	if principal == nil {
		return
	}
	var req dto.UpdateNoteRequest
	if !bindJSON(c, &req) {
		return
	}
	note, err := h.service.Update(c.Request.Context(), principal.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NoteToWire(note))
}

// Delete godoc
// @Summary Delete a note
// @Tags Notes
// @Param id path string true "Note id"
// @Success 204
// @Failure 403 {object} response.ErrorBody
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	principal := requirePrincipal(c)
	if principal == nil {
		return
	}
	if err := h.service.Delete(c.Request.Context(), principal.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
