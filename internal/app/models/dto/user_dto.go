package dto

import (
	"github.com/asrivastava/codecampus/internal/app/models"
)

// UserSummary is the identity projection embedded in assembled views.
// It never carries credential fields.
type UserSummary struct {
	ID        string `json:"id" example:"8b3f3c1e-0dc5-4b4e-9a7e-2f1f6f3f0a11"`
	FullName  string `json:"fullname" example:"John Doe"`
	Username  string `json:"username" example:"jdoe"`
	AvatarURL string `json:"avatar,omitempty"`
	Email     string `json:"email" example:"jdoe@campus.edu"`
	Role      string `json:"role" example:"USER"`
}

// NewUserSummary projects a user onto the fields safe to embed in views.
func NewUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID.String(),
		FullName:  u.FullName,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Email:     u.Email,
		Role:      string(u.RoleType),
	}
}

// UserResponse is the full (still credential-free) representation of a user.
type UserResponse struct {
	UserSummary
	RegNumber   string             `json:"regNumber" example:"21BCE1041"`
	Bio         string             `json:"bio,omitempty"`
	Skills      []string           `json:"skills,omitempty"`
	SocialLinks models.SocialLinks `json:"socialLinks"`
	CreatedAt   string             `json:"createdAt" example:"2024-01-15T10:00:00Z"`
}

// UpdateProfileRequest represents the editable profile fields.
type UpdateProfileRequest struct {
	FullName    string              `json:"fullname" binding:"omitempty,min=2,max=100"`
	Bio         string              `json:"bio" binding:"omitempty,max=500"`
	Skills      []string            `json:"skills" binding:"omitempty,max=30"`
	SocialLinks *models.SocialLinks `json:"socialLinks"`
}

// ChangeRoleRequest represents an admin role change.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN USER ALUMNI"`
}

// UserListResponse is a paginated user listing for administration.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}

// ProfileResponse aggregates a user's public profile with their approved
// content, each card enriched relative to the requesting viewer.
type ProfileResponse struct {
	User     UserResponse      `json:"user"`
	Blogs    []BlogResponse    `json:"blogs"`
	Projects []ProjectResponse `json:"projects"`
	Events   []EventResponse   `json:"events"`
}
