package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/middleware"
)

// StaffController handles staff operations and their sub-resources
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{staffService: staffService}
}

// GetStaff lists all staff members
// @Summary List staff
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StaffListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff [get]
func (c *StaffController) GetStaff(ctx *gin.Context) {
	staff, err := c.staffService.GetStaff(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StaffListResponse{Success: true, Staff: dto.FromStaffList(staff)})
}

// GetStaffMember retrieves one staff member
// @Summary Get staff member details
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.StaffDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [get]
func (c *StaffController) GetStaffMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	staff, err := c.staffService.GetStaffMember(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StaffDetailResponse{Success: true, Staff: dto.FromStaff(staff)})
}

// CreateStaffMember creates a new staff member
// @Summary Create a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRequest true "Staff member"
// @Success 201 {object} dto.StaffDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /staff [post]
func (c *StaffController) CreateStaffMember(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	staff, err := c.staffService.CreateStaffMember(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.StaffDetailResponse{Success: true, Staff: dto.FromStaff(staff)})
}

// UpdateStaffMember updates an existing staff member
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Staff member"
// @Success 200 {object} dto.StaffDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [put]
func (c *StaffController) UpdateStaffMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	staff, err := c.staffService.UpdateStaffMember(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StaffDetailResponse{Success: true, Staff: dto.FromStaff(staff)})
}

// DeleteStaffMember removes a staff member and their dependent records
// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [delete]
func (c *StaffController) DeleteStaffMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.staffService.DeleteStaffMember(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Staff member deleted"))
}

// GetWorkAssignments lists a staff member's work assignments
// @Summary List work assignments
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.WorkAssignmentListResponse
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id}/work-assignments [get]
func (c *StaffController) GetWorkAssignments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignments, err := c.staffService.GetWorkAssignments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.WorkAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, dto.FromWorkAssignment(a))
	}
	ctx.JSON(http.StatusOK, dto.WorkAssignmentListResponse{Success: true, Assignments: out})
}

// AddWorkAssignment places a staff member at a centre
// @Summary Add a work assignment
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param request body dto.CreateWorkAssignmentRequest true "Assignment"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Staff member or centre not found"
// @Router /staff/{id}/work-assignments [post]
func (c *StaffController) AddWorkAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateWorkAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	if _, err := c.staffService.AddWorkAssignment(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Work assignment added"))
}

// RemoveWorkAssignment removes a work assignment
// @Summary Remove a work assignment
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param assignmentId path int true "Assignment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /staff/{id}/work-assignments/{assignmentId} [delete]
func (c *StaffController) RemoveWorkAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "assignmentId")
	if !ok {
		return
	}

	if err := c.staffService.RemoveWorkAssignment(ctx, id, assignmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Work assignment removed"))
}

// GetAccommodations lists a staff member's accommodation records
// @Summary List accommodations
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.AccommodationListResponse
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id}/accommodations [get]
func (c *StaffController) GetAccommodations(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	accommodations, err := c.staffService.GetAccommodations(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.AccommodationResponse, 0, len(accommodations))
	for _, a := range accommodations {
		out = append(out, dto.FromAccommodation(a))
	}
	ctx.JSON(http.StatusOK, dto.AccommodationListResponse{Success: true, Accommodations: out})
}

// AddAccommodation records lodging for a staff member
// @Summary Add an accommodation record
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param request body dto.CreateAccommodationRequest true "Accommodation"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Staff member or centre not found"
// @Router /staff/{id}/accommodations [post]
func (c *StaffController) AddAccommodation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateAccommodationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	if _, err := c.staffService.AddAccommodation(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Accommodation added"))
}

// RemoveAccommodation removes an accommodation record
// @Summary Remove an accommodation
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param accommodationId path int true "Accommodation ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Accommodation not found"
// @Router /staff/{id}/accommodations/{accommodationId} [delete]
func (c *StaffController) RemoveAccommodation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	accommodationID, ok := parseIDParam(ctx, "accommodationId")
	if !ok {
		return
	}

	if err := c.staffService.RemoveAccommodation(ctx, id, accommodationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Accommodation removed"))
}

// GetDocuments lists a staff member's uploaded documents
// @Summary List staff documents
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.StaffDocumentListResponse
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id}/documents [get]
func (c *StaffController) GetDocuments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	documents, err := c.staffService.GetDocuments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StaffDocumentListResponse{Success: true, Documents: documents})
}

// UploadDocument stores an uploaded file against a staff member
// @Summary Upload a staff document
// @Tags staff
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.StaffDocumentDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id}/documents [post]
func (c *StaffController) UploadDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("A file is required"))
		return
	}

	document, err := c.staffService.UploadDocument(ctx, id, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.StaffDocumentDetailResponse{Success: true, Document: document})
}

// RemoveDocument deletes an uploaded document
// @Summary Delete a staff document
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param documentId path int true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /staff/{id}/documents/{documentId} [delete]
func (c *StaffController) RemoveDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	documentID, ok := parseIDParam(ctx, "documentId")
	if !ok {
		return
	}

	if err := c.staffService.RemoveDocument(ctx, id, documentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Document deleted"))
}
