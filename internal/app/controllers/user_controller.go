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

// UserController handles account and profile endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetMe returns the caller's own account
// @Summary Get the current account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	resp, err := c.userService.GetMe(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Account retrieved", resp))
}

// UpdateProfile edits the caller's profile fields
// @Summary Update the current profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.userService.UpdateProfile(ctx.Request.Context(), user.ID, &req, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Profile updated", resp))
}

// UploadAvatar replaces the caller's avatar image
// @Summary Upload an avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /users/me/avatar [put]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	avatar, err := ctx.FormFile("avatar")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.userService.UpdateProfile(ctx.Request.Context(), user.ID, &dto.UpdateProfileRequest{}, avatar)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Avatar updated", resp))
}

// GetProfile returns a public profile with the member's approved contributions
// @Summary Get a public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /profiles/{username} [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	username := ctx.Param("username")

	profile, err := c.userService.GetProfileByUsername(ctx.Request.Context(), username, optionalViewer(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Profile retrieved", profile))
}

// ListAll handles the admin member listing
// @Summary List all members (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse}
// @Failure 403 {object} dto.APIResponse
// @Router /admin/users [get]
func (c *UserController) ListAll(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	users, err := c.userService.GetAllUsers(ctx.Request.Context(), user, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Users retrieved", users))
}

// ChangeRole handles role changes
// @Summary Change a member's role (admin)
// @Description Admins cannot demote themselves
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.ChangeRoleRequest true "New role"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /admin/users/{id}/role [put]
func (c *UserController) ChangeRole(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ChangeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.userService.ChangeRole(ctx.Request.Context(), user, id, models.RoleType(req.Role))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Role updated", resp))
}

// Delete handles account removal
// @Summary Delete a member (admin)
// @Description Admins cannot delete their own account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /admin/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "User deleted", nil))
}
