package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/services"
	"github.com/asrivastava/codecampus/internal/middleware"
	"github.com/asrivastava/codecampus/internal/pkg/helpers"
)

// CommentController handles comment endpoints. Creation is exposed per
// target kind through CreateFor, so the same handler body serves blogs,
// projects and events.
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CreateFor returns a handler that posts a comment under the given target kind.
// @Summary Comment on a content item
// @Description Creates a comment in PENDING state under a blog, project or event
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target content ID"
// @Param request body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /blogs/{id}/comments [post]
func (c *CommentController) CreateFor(kind models.TargetKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := mustCurrentUser(ctx)
		if !ok {
			return
		}
		targetID, ok := parseUUIDParam(ctx, "id")
		if !ok {
			return
		}
		var req dto.CreateCommentRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(ctx, err)
			return
		}

		comment, err := c.commentService.CreateComment(ctx.Request.Context(), user.ID, kind, targetID, &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Comment submitted for review", comment))
	}
}

// Delete handles comment deletion
// @Summary Delete a comment
// @Description Author or admin. Likes on the comment are removed with it.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /comments/{id} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.commentService.DeleteComment(ctx.Request.Context(), user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Comment deleted", nil))
}

// ListAll handles the moderation queue
// @Summary List all comments (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CommentListResponse}
// @Failure 403 {object} dto.APIResponse
// @Router /admin/comments [get]
func (c *CommentController) ListAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	comments, err := c.commentService.GetAllComments(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Comments retrieved", comments))
}

// Review handles the moderation decision
// @Summary Review a comment (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body dto.ReviewRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /admin/comments/{id}/review [post]
func (c *CommentController) Review(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	status, ok := bindReviewRequest(ctx)
	if !ok {
		return
	}

	comment, err := c.commentService.ReviewComment(ctx.Request.Context(), user, id, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Comment reviewed", comment))
}
