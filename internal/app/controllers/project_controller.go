package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/services"
	"github.com/asrivastava/codecampus/internal/middleware"
	"github.com/asrivastava/codecampus/internal/pkg/helpers"
)

// ProjectController handles project endpoints
type ProjectController struct {
	projectService services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// Create handles project creation
// @Summary Publish a project
// @Description Creates a project in PENDING state awaiting moderation
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project"
// @Success 201 {object} dto.APIResponse{data=dto.ProjectResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Project submitted for review", project))
}

// Get handles the assembled project detail
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /projects/{id} [get]
func (c *ProjectController) Get(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	project, err := c.projectService.GetProjectByID(ctx.Request.Context(), id, optionalViewer(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Project retrieved", project))
}

// ListApproved handles the public project listing
// @Summary List approved projects
// @Tags projects
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectListResponse}
// @Router /projects [get]
func (c *ProjectController) ListApproved(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	projects, err := c.projectService.GetApprovedProjects(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Projects retrieved", projects))
}

// ListAll handles the moderation listing
// @Summary List all projects (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, APPROVED, REJECTED)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectListResponse}
// @Failure 403 {object} dto.APIResponse
// @Router /admin/projects [get]
func (c *ProjectController) ListAll(ctx *gin.Context) {
	status, ok := statusFilter(ctx)
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	projects, err := c.projectService.GetAllProjects(ctx.Request.Context(), status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Projects retrieved", projects))
}

// Update handles project editing
// @Summary Edit a project
// @Description Author-only edit
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /projects/{id} [put]
func (c *ProjectController) Update(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), user, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Project updated", project))
}

// Delete handles project deletion
// @Summary Delete a project
// @Description Author or admin. Removes the project with its likes and comments.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /projects/{id} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(ctx.Request.Context(), user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Project deleted", nil))
}

// Review handles the moderation decision
// @Summary Review a project (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body dto.ReviewRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /admin/projects/{id}/review [post]
func (c *ProjectController) Review(ctx *gin.Context) {
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

	project, err := c.projectService.ReviewProject(ctx.Request.Context(), user, id, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Project reviewed", project))
}
