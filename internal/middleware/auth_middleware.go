package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/auth"
)

const currentUserKey = "currentUser"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      repositories.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// JWTAuth validates the bearer token and loads the account onto the context.
// The account is re-read on every request so role changes take effect
// immediately, not at token expiry.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.resolveUser(c)
		if err != nil {
			status, message := http.StatusUnauthorized, "Authentication required"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, message))
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// OptionalAuth loads the account when a valid token is present and stays
// anonymous otherwise. Public reads use it so views can still be personalized.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := m.resolveUser(c); err == nil {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// AdminRequired aborts unless the authenticated account holds the ADMIN role.
// It must run after JWTAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Authentication required"))
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Admin access required"))
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolveUser(c *gin.Context) (*models.User, error) {
	tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}
	claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		return nil, err
	}
	return m.users.GetByID(c.Request.Context(), claims.UserID)
}

// CurrentUser returns the authenticated account set by JWTAuth/OptionalAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
