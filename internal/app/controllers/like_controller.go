package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/services"
	"github.com/asrivastava/codecampus/internal/middleware"
)

// LikeController handles like endpoints. Handlers are produced per target
// kind so the same bodies serve blogs, projects, events and comments.
type LikeController struct {
	likeService services.LikeService
}

// NewLikeController creates a new LikeController
func NewLikeController(likeService services.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// LikeFor returns a handler that likes the target of the given kind.
// @Summary Like a content item
// @Description Records a like; liking the same target twice is rejected
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target ID"
// @Success 201 {object} dto.APIResponse{data=dto.LikeResponse}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /blogs/{id}/like [post]
func (c *LikeController) LikeFor(kind models.TargetKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := mustCurrentUser(ctx)
		if !ok {
			return
		}
		targetID, ok := parseUUIDParam(ctx, "id")
		if !ok {
			return
		}

		like, err := c.likeService.Like(ctx.Request.Context(), user.ID, kind, targetID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Liked", like))
	}
}

// UnlikeFor returns a handler that removes the caller's like from the target.
// @Summary Unlike a content item
// @Description Removes the caller's like; absent likes yield 404
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /blogs/{id}/like [delete]
func (c *LikeController) UnlikeFor(kind models.TargetKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := mustCurrentUser(ctx)
		if !ok {
			return
		}
		targetID, ok := parseUUIDParam(ctx, "id")
		if !ok {
			return
		}

		if err := c.likeService.Unlike(ctx.Request.Context(), user.ID, kind, targetID); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Like removed", nil))
	}
}
