package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/admissions-crm-api/internal/dto"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/pkg/response"
)

type configurationService interface {
	Get(ctx context.Context) (*models.GlobalConfig, error)
	Update(ctx context.Context, req dto.UpdateGlobalConfigRequest) (*models.GlobalConfig, error)
}

// ConfigurationHandler exposes the global vocabulary.
type ConfigurationHandler struct {
	service configurationService
}

// NewConfigurationHandler builds a new handler.
func NewConfigurationHandler(service configurationService) *ConfigurationHandler {
	return &ConfigurationHandler{service: service}
}

// Get godoc
// @Summary Get the global configuration
// @Tags Configuration
// @Produce json
// @Success 200 {object} dto.GlobalConfigResponse
// @Security BearerAuth
// @Router /config [get]
func (h *ConfigurationHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.GlobalConfigToWire(cfg))
}

// Update godoc
// @Summary Replace the global configuration
// @Tags Configuration
// @Accept json
// @Produce json
// @Param payload body dto.UpdateGlobalConfigRequest true "Configuration"
// @Success 200 {object} dto.GlobalConfigResponse
// @Failure 403 {object} response.ErrorBody
// @Security BearerAuth
// @Router /config [put]
func (h *ConfigurationHandler) Update(c *gin.Context) {
	var req dto.UpdateGlobalConfigRequest
	if !bindJSON(c, &req) {
		return
	}
	cfg, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.GlobalConfigToWire(cfg))
}
