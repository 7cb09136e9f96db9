package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/services"
	"github.com/asrivastava/codecampus/internal/middleware"
	"github.com/asrivastava/codecampus/internal/pkg/helpers"
)

// BlogController handles blog endpoints
type BlogController struct {
	blogService services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// Create handles blog creation
// @Summary Publish a blog
// @Description Creates a blog in PENDING state awaiting moderation
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlogRequest true "Blog"
// @Success 201 {object} dto.APIResponse{data=dto.BlogResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /blogs [post]
func (c *BlogController) Create(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	var req dto.CreateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	blog, err := c.blogService.CreateBlog(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Blog submitted for review", blog))
}

// Get handles the assembled blog detail
// @Summary Get a blog
// @Description Returns the assembled blog view with author, reviewer and reaction enrichment
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=dto.BlogResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /blogs/{id} [get]
func (c *BlogController) Get(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	blog, err := c.blogService.GetBlogByID(ctx.Request.Context(), id, optionalViewer(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blog retrieved", blog))
}

// ListApproved handles the public blog listing
// @Summary List approved blogs
// @Tags blogs
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse}
// @Router /blogs [get]
func (c *BlogController) ListApproved(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	blogs, err := c.blogService.GetApprovedBlogs(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blogs retrieved", blogs))
}

// ListAll handles the moderation listing
// @Summary List all blogs (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, APPROVED, REJECTED)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse}
// @Failure 403 {object} dto.APIResponse
// @Router /admin/blogs [get]
func (c *BlogController) ListAll(ctx *gin.Context) {
	status, ok := statusFilter(ctx)
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	blogs, err := c.blogService.GetAllBlogs(ctx.Request.Context(), status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blogs retrieved", blogs))
}

// Update handles blog editing
// @Summary Edit a blog
// @Description Author-only edit of title, content and tags
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Param request body dto.UpdateBlogRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.BlogResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /blogs/{id} [put]
func (c *BlogController) Update(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	blog, err := c.blogService.UpdateBlog(ctx.Request.Context(), user, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blog updated", blog))
}

// Delete handles blog deletion
// @Summary Delete a blog
// @Description Author or admin. Removes the blog with its likes and comments.
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /blogs/{id} [delete]
func (c *BlogController) Delete(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.DeleteBlog(ctx.Request.Context(), user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blog deleted", nil))
}

// Review handles the moderation decision
// @Summary Review a blog (admin)
// @Description Approves or rejects a PENDING blog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Param request body dto.ReviewRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.BlogResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /admin/blogs/{id}/review [post]
func (c *BlogController) Review(ctx *gin.Context) {
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

	blog, err := c.blogService.ReviewBlog(ctx.Request.Context(), user, id, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blog reviewed", blog))
}
