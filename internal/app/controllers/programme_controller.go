package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/middleware"
)

// ProgrammeController handles programme slot operations
type ProgrammeController struct {
	programmeService services.ProgrammeService
}

// NewProgrammeController creates a new ProgrammeController
func NewProgrammeController(programmeService services.ProgrammeService) *ProgrammeController {
	return &ProgrammeController{programmeService: programmeService}
}

// CreateSlot schedules an activity for a group
// @Summary Create a programme slot
// @Tags programme
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProgrammeSlotRequest true "Programme slot"
// @Success 201 {object} dto.ProgrammeSlotDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /programme-slots [post]
func (c *ProgrammeController) CreateSlot(ctx *gin.Context) {
	var req dto.CreateProgrammeSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	slot, err := c.programmeService.CreateSlot(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ProgrammeSlotDetailResponse{Success: true, Slot: dto.FromProgrammeSlot(slot)})
}

// DeleteSlot removes a programme slot
// @Summary Delete a programme slot
// @Tags programme
// @Produce json
// @Security BearerAuth
// @Param id path int true "Programme slot ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Programme slot not found"
// @Router /programme-slots/{id} [delete]
func (c *ProgrammeController) DeleteSlot(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.programmeService.DeleteSlot(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Programme slot deleted"))
}
