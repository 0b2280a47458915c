package handlers

import (
	"net/http"

	"homeserve/services/booking"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps engine error kinds onto HTTP statuses. NotFound
// and Precondition failures always reach the client explicitly; they are
// never folded into a zeroed response.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case booking.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case booking.IsPrecondition(err):
		utils.JSONError(c, http.StatusUnprocessableEntity, "precondition failed", err.Error())
	case booking.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
