package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/pkg/response"
)

type userService interface {
	Register(ctx context.Context, principal *models.Principal, req dto.CreateUserRequest) (*models.User, error)
	Me(ctx context.Context, userID string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserHandler handles staff profile endpoints.
type UserHandler struct {
	service userService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service userService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary Create the caller's profile
// @Description The first profile may claim the admin role; later ones are users.
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.CreateUserRequest false "Profile"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorBody
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	principal := requirePrincipal(c)
	if principal == nil {
		return
	}
	var req dto.CreateUserRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	user, err := h.service.Register(c.Request.Context(), principal, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusCreated, dto.UserToWire(user))
}

// Me godoc
// @Summary Get the caller's profile
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	principal := requirePrincipal(c)
	if principal == nil {
		return
	}
	user, err := h.service.Me(c.Request.Context(), principal.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, dto.UserToWire(user))
}

// List godoc
// @Summary List staff for assignee pickers
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, dto.UsersToSummaries(users))
}
