// Package controllers contains the gin handlers. Controllers stay thin:
// bind, resolve the caller, call the service, wrap the result in the
// response envelope. All error mapping goes through middleware.HandleAPIError.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/middleware"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

// parseUUIDParam parses a UUID path parameter, responding 400 on garbage.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid "+name+" identifier"))
		return uuid.Nil, false
	}
	return id, true
}

// mustCurrentUser returns the authenticated account or responds 401.
// Handlers behind JWTAuth can rely on it succeeding.
func mustCurrentUser(ctx *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Authentication required"))
		return nil, false
	}
	return user, true
}

// optionalViewer returns the account behind OptionalAuth, nil when anonymous.
func optionalViewer(ctx *gin.Context) *models.User {
	user, _ := middleware.CurrentUser(ctx)
	return user
}

// statusFilter parses the optional ?status= query for admin listings.
func statusFilter(ctx *gin.Context) (*models.ContentStatus, bool) {
	raw := ctx.Query("status")
	if raw == "" {
		return nil, true
	}
	status := models.ContentStatus(raw)
	if !status.Valid() {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("status must be PENDING, APPROVED or REJECTED"))
		return nil, false
	}
	return &status, true
}

// bindReviewRequest binds and converts a moderation decision body.
func bindReviewRequest(ctx *gin.Context) (models.ContentStatus, bool) {
	var req dto.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return "", false
	}
	return models.ContentStatus(req.Status), true
}
