package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/middleware"
)

// FlightController handles flight operations
type FlightController struct {
	flightService services.FlightService
}

// NewFlightController creates a new FlightController
func NewFlightController(flightService services.FlightService) *FlightController {
	return &FlightController{flightService: flightService}
}

// GetFlights lists all flights
// @Summary List flights
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FlightListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /flights [get]
func (c *FlightController) GetFlights(ctx *gin.Context) {
	flights, err := c.flightService.GetFlights(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FlightListResponse{Success: true, Flights: dto.FromFlights(flights)})
}

// GetFlight retrieves one flight
// @Summary Get flight details
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flight ID"
// @Success 200 {object} dto.FlightDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Flight not found"
// @Router /flights/{id} [get]
func (c *FlightController) GetFlight(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	flight, err := c.flightService.GetFlight(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FlightDetailResponse{Success: true, Flight: dto.FromFlight(flight)})
}

// CreateFlight creates a new flight
// @Summary Create a flight
// @Tags flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFlightRequest true "Flight"
// @Success 201 {object} dto.FlightDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /flights [post]
func (c *FlightController) CreateFlight(ctx *gin.Context) {
	var req dto.CreateFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	flight, err := c.flightService.CreateFlight(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.FlightDetailResponse{Success: true, Flight: dto.FromFlight(flight)})
}

// UpdateFlight updates an existing flight
// @Summary Update a flight
// @Tags flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flight ID"
// @Param request body dto.UpdateFlightRequest true "Flight"
// @Success 200 {object} dto.FlightDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Flight not found"
// @Router /flights/{id} [put]
func (c *FlightController) UpdateFlight(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	flight, err := c.flightService.UpdateFlight(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FlightDetailResponse{Success: true, Flight: dto.FromFlight(flight)})
}

// GetFlightGroups lists the groups linked to a flight
// @Summary List groups on a flight
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flight ID"
// @Success 200 {object} dto.GroupListResponse
// @Failure 404 {object} dto.ErrorResponse "Flight not found"
// @Router /flights/{id}/groups [get]
func (c *FlightController) GetFlightGroups(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	groups, err := c.flightService.GetFlightGroups(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GroupListResponse{Success: true, Groups: dto.FromGroups(groups)})
}
