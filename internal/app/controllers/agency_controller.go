package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/middleware"
)

// AgencyController handles agency operations
type AgencyController struct {
	agencyService services.AgencyService
}

// NewAgencyController creates a new AgencyController
func NewAgencyController(agencyService services.AgencyService) *AgencyController {
	return &AgencyController{agencyService: agencyService}
}

// GetAgencies lists all agencies
// @Summary List agencies
// @Tags agencies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AgencyListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /agencies [get]
func (c *AgencyController) GetAgencies(ctx *gin.Context) {
	agencies, err := c.agencyService.GetAgencies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AgencyListResponse{Success: true, Agencies: agencies})
}
