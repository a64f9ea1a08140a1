package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/middleware"
)

// CentreController handles centre operations
type CentreController struct {
	centreService    services.CentreService
	programmeService services.ProgrammeService
}

// NewCentreController creates a new CentreController
func NewCentreController(centreService services.CentreService, programmeService services.ProgrammeService) *CentreController {
	return &CentreController{
		centreService:    centreService,
		programmeService: programmeService,
	}
}

// GetCentres lists all centres
// @Summary List centres
// @Tags centres
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CentreListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /centres [get]
func (c *CentreController) GetCentres(ctx *gin.Context) {
	centres, err := c.centreService.GetCentres(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CentreListResponse{Success: true, Centres: centres})
}

// GetOccupancy reports the per-centre, per-day headcount
// @Summary Centre occupancy
// @Description Aggregates group stays into a per-centre per-day headcount over a trailing window
// @Tags centres
// @Produce json
// @Security BearerAuth
// @Param days query int false "Trailing window in days" default(30)
// @Success 200 {object} dto.OccupancyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid days parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /centres/occupancy [get]
func (c *CentreController) GetOccupancy(ctx *gin.Context) {
	windowDays := 0
	if daysStr := ctx.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("days must be a positive integer"))
			return
		}
		windowDays = days
	}

	occupancy, err := c.centreService.GetOccupancy(ctx, windowDays)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OccupancyResponse{Success: true, Occupancy: occupancy})
}

// GetCentre retrieves one centre
// @Summary Get centre details
// @Tags centres
// @Produce json
// @Security BearerAuth
// @Param id path int true "Centre ID"
// @Success 200 {object} dto.CentreDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Centre not found"
// @Router /centres/{id} [get]
func (c *CentreController) GetCentre(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	centre, err := c.centreService.GetCentre(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CentreDetailResponse{Success: true, Centre: centre})
}

// CreateCentre creates a new centre
// @Summary Create a centre
// @Tags centres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCentreRequest true "Centre"
// @Success 201 {object} dto.CentreDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Centre name already exists"
// @Router /centres [post]
func (c *CentreController) CreateCentre(ctx *gin.Context) {
	var req dto.CreateCentreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	centre, err := c.centreService.CreateCentre(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CentreDetailResponse{Success: true, Centre: centre})
}

// UpdateCentre updates an existing centre
// @Summary Update a centre
// @Tags centres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Centre ID"
// @Param request body dto.UpdateCentreRequest true "Centre"
// @Success 200 {object} dto.CentreDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Centre not found"
// @Failure 409 {object} dto.ErrorResponse "Centre name already exists"
// @Router /centres/{id} [put]
func (c *CentreController) UpdateCentre(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCentreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	centre, err := c.centreService.UpdateCentre(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CentreDetailResponse{Success: true, Centre: centre})
}

// DeleteCentre removes a centre
// @Summary Delete a centre
// @Tags centres
// @Produce json
// @Security BearerAuth
// @Param id path int true "Centre ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Centre not found"
// @Failure 409 {object} dto.ErrorResponse "Centre is still referenced"
// @Router /centres/{id} [delete]
func (c *CentreController) DeleteCentre(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.centreService.DeleteCentre(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Centre deleted"))
}

// GetCentreProgramme lists the programme slots of all groups at a centre
// @Summary List a centre's programme slots
// @Tags centres
// @Produce json
// @Security BearerAuth
// @Param id path int true "Centre ID"
// @Success 200 {object} dto.ProgrammeSlotListResponse
// @Failure 404 {object} dto.ErrorResponse "Centre not found"
// @Router /centres/{id}/programme-slots [get]
func (c *CentreController) GetCentreProgramme(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	slots, err := c.programmeService.GetCentreSlots(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProgrammeSlotListResponse{Success: true, Slots: dto.FromProgrammeSlots(slots)})
}
