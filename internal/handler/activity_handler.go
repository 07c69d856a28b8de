package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/pkg/response"
)

type communicationService interface {
	List(ctx context.Context, studentID string) ([]models.Communication, error)
	Create(ctx context.Context, actor string, req dto.CreateCommunicationRequest) (*models.Communication, error)
}

type interactionService interface {
	List(ctx context.Context, studentID string) ([]models.Interaction, error)
	Create(ctx context.Context, req dto.CreateInteractionRequest) (*models.Interaction, error)
}

// ActivityHandler exposes the append-only communication and interaction logs.
type ActivityHandler struct {
	communications communicationService
	interactions   interactionService
}

func NewActivityHandler(communications communicationService, interactions interactionService) *ActivityHandler {
	return &ActivityHandler{communications: communications, interactions: interactions}
}

// ListCommunications godoc
// @Summary List communications, newest first
// @Tags Communications
// @Produce json
// @Param studentId query string false "Student id"
// @Success 200 {array} dto.CommunicationResponse
// @Security BearerAuth
// @Router /communications [get]
func (h *ActivityHandler) ListCommunications(c *gin.Context) {
	items, err := h.communications.List(c.Request.Context(), c.Query("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.CommunicationsToWire(items))
}

// CreateCommunication godoc
// @Summary Log a call, email or SMS
// @Tags Communications
// @Accept json
// @Produce json
// @Param payload body dto.CreateCommunicationRequest true "Communication"
// @Success 201 {object} dto.CommunicationResponse
// @Failure 400 {object} response.ErrorBody
// @Security BearerAuth
// @Router /communications [post]
func (h *ActivityHandler) CreateCommunication(c *gin.Context) {
	principal := requirePrincipal(c)
	if principal == nil {
		return
	}
	var req dto.CreateCommunicationRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.communications.Create(c.Request.Context(), principal.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.CommunicationToWire(item))
}

// ListInteractions godoc
// @Summary List interactions, newest first
// @Tags Interactions
// @Produce json
// @Param studentId query string false "Student id"
// @Success 200 {array} dto.InteractionResponse
// @Security BearerAuth
// @Router /interactions [get]
func (h *ActivityHandler) ListInteractions(c *gin.Context) {
	items, err := h.interactions.List(c.Request.Context(), c.Query("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.InteractionsToWire(items))
}

// CreateInteraction godoc
// @Summary Record a student activity event
// @Tags Interactions
// @Accept json
// @Produce json
// @Param payload body dto.CreateInteractionRequest true "Interaction"
// @Success 201 {object} dto.InteractionResponse
// @Security BearerAuth
// @Router /interactions [post]
func (h *ActivityHandler) CreateInteraction(c *gin.Context) {
	var req dto.CreateInteractionRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.interactions.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.InteractionToWire(item))
}
