package handlers

import (
	"errors"
	"net/http"

	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// ValidationErrorResponse lists every violated field
type ValidationErrorResponse struct {
	Error  string                 `json:"error" example:"validation error"`
	Fields []apperrors.FieldError `json:"fields"`
}

// respondError maps typed application errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	if verr, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation error", Fields: verr.Fields})
		return
	}

	var storageErr *apperrors.StorageError
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsInvalidTransition(err), apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage unavailable"})
	default:
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project ID"})
		return uuid.Nil, false
	}
	return id, true
}
