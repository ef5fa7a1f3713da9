package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	"github.com/SscSPs/vetclinic_backend/internal/validation"
	"github.com/gin-gonic/gin"
)

// ErrorDetails is the body of every error response.
type ErrorDetails struct {
	StatusCode int                     `json:"statusCode"`
	Message    string                  `json:"message"`
	Errors     []validation.FieldError `json:"errors,omitempty"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorDetails{StatusCode: status, Message: message})
}

// respondBindError reports a request body that failed to decode or validate.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	if fieldErrs := validation.FieldErrors(err); fieldErrs != nil {
		logger.Warn("Request validation failed", slog.Int("fields", len(fieldErrs)))
		c.JSON(http.StatusBadRequest, ErrorDetails{
			StatusCode: http.StatusBadRequest,
			Message:    "validation failed",
			Errors:     fieldErrs,
		})
		return
	}
	logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
	respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
}

// respondServiceError maps a service error onto a status code.
func respondServiceError(c *gin.Context, logger *slog.Logger, kind string, err error) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Entity not found", slog.String("error", err.Error()))
		respondError(c, http.StatusNotFound, kind+" not found")
	case errors.Is(err, apperrors.ErrPartialCollection),
		errors.Is(err, apperrors.ErrIDMismatch),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate entity", slog.String("error", err.Error()))
		respondError(c, http.StatusConflict, kind+" already exists")
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Relationship conflict", slog.String("error", err.Error()))
		respondError(c, http.StatusConflict, "The change conflicts with related data")
	case errors.As(err, &appErr):
		logger.Error("Store failure", slog.String("error", err.Error()))
		respondError(c, appErr.Code, appErr.Message)
	default:
		logger.Error("Unexpected service failure", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
