package handlers

import (
	"net/http"

	"shoplist-api/internal/engine"
	"shoplist-api/internal/middleware"
	"shoplist-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondEngineError translates an engine error into an HTTP response.
// Validation failures and policy violations map to 400, missing records to
// 404, anything else is a persistence fault reported as 500.
func respondEngineError(c *gin.Context, err error, fallback string) {
	switch {
	case engine.IsValidation(err):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "VALIDATION_FAILED",
			Message: err.Error(),
		})
	case engine.IsNotFound(err):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: fallback,
		})
	}
}

// requireUserID resolves the authenticated user or writes a 401 response.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Authentication required",
		})
		return uuid.Nil, false
	}
	return userID, true
}
