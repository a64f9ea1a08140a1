package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/app/services"
	"github.com/selim/groupdesk/internal/middleware"
)

// TransferController handles transfer operations
type TransferController struct {
	transferService services.TransferService
}

// NewTransferController creates a new TransferController
func NewTransferController(transferService services.TransferService) *TransferController {
	return &TransferController{transferService: transferService}
}

// GetTransfers lists all transfers
// @Summary List transfers
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TransferListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transfers [get]
func (c *TransferController) GetTransfers(ctx *gin.Context) {
	transfers, err := c.transferService.GetTransfers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TransferListResponse{Success: true, Transfers: dto.FromTransfers(transfers)})
}

// GetTransportTransfers lists transfers joined with their linked flight
// @Summary List transfers for the transport grid
// @Description Transfers joined with the date and time of their linked flight
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TransportTransferListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transfers/transport-transfers [get]
func (c *TransferController) GetTransportTransfers(ctx *gin.Context) {
	transfers, err := c.transferService.GetTransportTransfers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TransportTransferListResponse{Success: true, Transfers: dto.FromTransportTransfers(transfers)})
}

// GetTransfer retrieves one transfer
// @Summary Get transfer details
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} dto.TransferDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Router /transfers/{id} [get]
func (c *TransferController) GetTransfer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	transfer, err := c.transferService.GetTransfer(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TransferDetailResponse{Success: true, Transfer: dto.FromTransfer(transfer)})
}

// CreateTransfer creates a new transfer
// @Summary Create a transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTransferRequest true "Transfer"
// @Success 201 {object} dto.TransferDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Linked flight not found"
// @Router /transfers [post]
func (c *TransferController) CreateTransfer(ctx *gin.Context) {
	var req dto.CreateTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	transfer, err := c.transferService.CreateTransfer(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.TransferDetailResponse{Success: true, Transfer: dto.FromTransfer(transfer)})
}

// UpdateTransfer updates an existing transfer
// @Summary Update a transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Param request body dto.UpdateTransferRequest true "Transfer"
// @Success 200 {object} dto.TransferDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Router /transfers/{id} [put]
func (c *TransferController) UpdateTransfer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FormatBindingError(err)))
		return
	}

	transfer, err := c.transferService.UpdateTransfer(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TransferDetailResponse{Success: true, Transfer: dto.FromTransfer(transfer)})
}

// DeleteTransfer removes a transfer and its assignments
// @Summary Delete a transfer
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Router /transfers/{id} [delete]
func (c *TransferController) DeleteTransfer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.transferService.DeleteTransfer(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Transfer deleted"))
}
