package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/middleware"
)

// ParticipantController handles participant operations
type ParticipantController struct {
	participantService services.ParticipantService
}

// NewParticipantController creates a new ParticipantController
func NewParticipantController(participantService services.ParticipantService) *ParticipantController {
	return &ParticipantController{participantService: participantService}
}

// GetParticipants lists all participants
// @Summary List participants
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ParticipantListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /participants [get]
func (c *ParticipantController) GetParticipants(ctx *gin.Context) {
	participants, err := c.participantService.GetParticipants(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ParticipantListResponse{Success: true, Participants: dto.FromParticipants(participants)})
}

// GetParticipant retrieves one participant
// @Summary Get participant details
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} dto.ParticipantDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /participants/{id} [get]
func (c *ParticipantController) GetParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	participant, err := c.participantService.GetParticipant(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ParticipantDetailResponse{Success: true, Participant: dto.FromParticipant(participant)})
}

// CreateParticipant creates a new participant
// @Summary Create a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateParticipantRequest true "Participant"
// @Success 201 {object} dto.ParticipantDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /participants [post]
func (c *ParticipantController) CreateParticipant(ctx *gin.Context) {
	var req dto.CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	participant, err := c.participantService.CreateParticipant(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ParticipantDetailResponse{Success: true, Participant: dto.FromParticipant(participant)})
}

// UpdateParticipant updates an existing participant
// @Summary Update a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Param request body dto.UpdateParticipantRequest true "Participant"
// @Success 200 {object} dto.ParticipantDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /participants/{id} [put]
func (c *ParticipantController) UpdateParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	participant, err := c.participantService.UpdateParticipant(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ParticipantDetailResponse{Success: true, Participant: dto.FromParticipant(participant)})
}

// DeleteParticipant removes a participant
// @Summary Delete a participant
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /participants/{id} [delete]
func (c *ParticipantController) DeleteParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.participantService.DeleteParticipant(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Participant deleted"))
}
