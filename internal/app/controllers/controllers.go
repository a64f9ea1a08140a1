package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/selim/groupdesk/internal/app/models/dto"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes
// the 400 response itself and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
