package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/services"
	"github.com/asrivastava/codecampus/internal/middleware"
)

// AuthController handles registration, login and token refresh
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles account creation
// @Summary Register a new account
// @Description Creates an account with the USER role and returns a token pair. Accepts an optional avatar file.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param regNumber formData string true "Campus registration number"
// @Param username formData string true "Username"
// @Param fullname formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password (min 8 chars)"
// @Param avatar formData file false "Avatar image"
// @Success 201 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	avatar, _ := ctx.FormFile("avatar")

	tokens, err := c.authService.Register(ctx.Request.Context(), &req, avatar)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Account created", tokens))
}

// Login handles credential sign-in
// @Summary Log in
// @Description Verifies credentials and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tokens, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Logged in", tokens))
}

// Refresh handles refresh-token exchange
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new token pair; the old refresh token is invalidated
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tokens, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Tokens refreshed", tokens))
}
