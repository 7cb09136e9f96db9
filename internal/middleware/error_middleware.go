package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

// HandleAPIError maps application errors onto the response envelope. Every
// controller funnels its service errors through here so the status taxonomy
// lives in exactly one place.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		message = "Internal server error"
	}
	c.JSON(status, dto.NewErrorResponse(status, message))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidStateTransition),
		errors.Is(err, apperrors.ErrNotParticipant):
		return http.StatusBadRequest

	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrBlogNotFound),
		errors.Is(err, apperrors.ErrProjectNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrLikeNotFound):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyLiked),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrUsernameExists),
		errors.Is(err, apperrors.ErrRegNumberExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// HandleValidationError maps a gin binding failure to a 400 response.
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Validation failed: "+err.Error()))
}
