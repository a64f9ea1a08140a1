package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/middleware"
)

// GroupController handles group operations
type GroupController struct {
	groupService       services.GroupService
	transferService    services.TransferService
	participantService services.ParticipantService
	programmeService   services.ProgrammeService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService, transferService services.TransferService,
	participantService services.ParticipantService, programmeService services.ProgrammeService) *GroupController {
	return &GroupController{
		groupService:       groupService,
		transferService:    transferService,
		participantService: participantService,
		programmeService:   programmeService,
	}
}

// GetGroups lists all groups
// @Summary List groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.GroupListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups [get]
func (c *GroupController) GetGroups(ctx *gin.Context) {
	groups, err := c.groupService.GetGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GroupListResponse{Success: true, Groups: dto.FromGroups(groups)})
}

// GetSalesGrid lists all groups ordered for the sales grid
// @Summary List groups for the sales grid
// @Description Groups joined with agency and centre names, ordered by arrival date
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.GroupListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/sales-grid-groups [get]
func (c *GroupController) GetSalesGrid(ctx *gin.Context) {
	groups, err := c.groupService.GetSalesGrid(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GroupListResponse{Success: true, Groups: dto.FromGroups(groups)})
}

// GetGroup retrieves one group
// @Summary Get group details
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.GroupDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	group, err := c.groupService.GetGroup(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GroupDetailResponse{Success: true, Group: dto.FromGroup(group)})
}

// CreateGroup creates a new group
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group"
// @Success 201 {object} dto.GroupDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Group name already exists"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	group, err := c.groupService.CreateGroup(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.GroupDetailResponse{Success: true, Group: dto.FromGroup(group)})
}

// UpdateGroup updates an existing group
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.UpdateGroupRequest true "Group"
// @Success 200 {object} dto.GroupDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 409 {object} dto.ErrorResponse "Group name already exists"
// @Router /groups/{id} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	group, err := c.groupService.UpdateGroup(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GroupDetailResponse{Success: true, Group: dto.FromGroup(group)})
}

// DeleteGroup removes a group and its associations
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.groupService.DeleteGroup(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Group deleted"))
}

// GetGroupFlights lists the flights linked to a group
// @Summary List a group's flights
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.FlightListResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/flights [get]
func (c *GroupController) GetGroupFlights(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	flights, err := c.groupService.GetGroupFlights(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FlightListResponse{Success: true, Flights: dto.FromFlights(flights)})
}

// LinkFlight links an existing flight to a group
// @Summary Link a flight to a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.LinkFlightRequest true "Flight link"
// @Success 201 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Group or flight not found"
// @Failure 409 {object} dto.ErrorResponse "Flight already linked"
// @Router /groups/{id}/flights [post]
func (c *GroupController) LinkFlight(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.LinkFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	if err := c.groupService.LinkFlight(ctx, id, req.FlightID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Flight linked to group"))
}

// UnlinkFlight removes a flight link from a group
// @Summary Unlink a flight from a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param flightId path int true "Flight ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Link not found"
// @Router /groups/{id}/flights/{flightId} [delete]
func (c *GroupController) UnlinkFlight(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	flightID, ok := parseIDParam(ctx, "flightId")
	if !ok {
		return
	}

	if err := c.groupService.UnlinkFlight(ctx, id, flightID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Flight unlinked from group"))
}

// GetFlightDateMismatches reports flights whose dates disagree with their group
// @Summary List flight date mismatches
// @Description Compares each group's arrival and departure dates with its linked flights
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DateMismatchListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/flight-date-mismatches [get]
func (c *GroupController) GetFlightDateMismatches(ctx *gin.Context) {
	mismatches, err := c.groupService.GetFlightDateMismatches(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DateMismatchListResponse{Success: true, Mismatches: mismatches})
}

// ImportGroups imports a batch of groups
// @Summary Import groups
// @Description Imports a batch of group records in one transaction; invalid rows are skipped and name collisions reported per row
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ImportGroupsRequest true "Batch"
// @Success 200 {object} dto.ImportGroupsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/import [post]
func (c *GroupController) ImportGroups(ctx *gin.Context) {
	var req dto.ImportGroupsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	result, err := c.groupService.ImportGroups(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetGroupTransfers lists a group's transfer assignments
// @Summary List a group's transfer assignments
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.AssignmentListResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/transfers [get]
func (c *GroupController) GetGroupTransfers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignments, err := c.transferService.GetGroupAssignments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, dto.FromAssignment(a))
	}
	ctx.JSON(http.StatusOK, dto.AssignmentListResponse{Success: true, Assignments: out})
}

// AssignTransfer puts a group onto a transfer
// @Summary Assign a transfer to a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.AssignTransferRequest true "Assignment"
// @Success 201 {object} dto.AssignmentDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Group or transfer not found"
// @Failure 409 {object} dto.ErrorResponse "Transfer already assigned"
// @Router /groups/{id}/transfers [post]
func (c *GroupController) AssignTransfer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	assignment, err := c.transferService.AssignGroup(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.AssignmentDetailResponse{Success: true, Assignment: dto.FromAssignment(assignment)})
}

// UpdateTransferAssignment updates an existing assignment
// @Summary Update a transfer assignment
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param assignmentId path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Assignment"
// @Success 200 {object} dto.AssignmentDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /groups/{id}/transfers/{assignmentId} [put]
func (c *GroupController) UpdateTransferAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "assignmentId")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	assignment, err := c.transferService.UpdateAssignment(ctx, id, assignmentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AssignmentDetailResponse{Success: true, Assignment: dto.FromAssignment(assignment)})
}

// RemoveTransferAssignment deletes an assignment
// @Summary Remove a transfer assignment
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param assignmentId path int true "Assignment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /groups/{id}/transfers/{assignmentId} [delete]
func (c *GroupController) RemoveTransferAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "assignmentId")
	if !ok {
		return
	}

	if err := c.transferService.RemoveAssignment(ctx, id, assignmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Transfer assignment removed"))
}

// GetGroupParticipants lists the participants of a group
// @Summary List a group's participants
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.ParticipantListResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/participants [get]
func (c *GroupController) GetGroupParticipants(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	participants, err := c.participantService.GetGroupParticipants(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ParticipantListResponse{Success: true, Participants: dto.FromParticipants(participants)})
}

// GetGroupProgramme lists a group's programme slots
// @Summary List a group's programme slots
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.ProgrammeSlotListResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/programme-slots [get]
func (c *GroupController) GetGroupProgramme(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	slots, err := c.programmeService.GetGroupSlots(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProgrammeSlotListResponse{Success: true, Slots: dto.FromProgrammeSlots(slots)})
}
