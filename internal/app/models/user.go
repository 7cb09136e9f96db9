package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	RegNumber    string      `json:"regNumber" db:"reg_number" example:"21BCE1041"` // Campus registration number, unique
	Username     string      `json:"username" db:"username" example:"jdoe"`
	FullName     string      `json:"fullName" db:"full_name" example:"John Doe"`
	Email        string      `json:"email" db:"email" example:"jdoe@campus.edu"`
	Password     string      `json:"-" db:"password"` // Hashed password, excluded from JSON
	Bio          string      `json:"bio,omitempty" db:"bio"`
	AvatarURL    string      `json:"avatarUrl,omitempty" db:"avatar_url"`
	RoleType     RoleType    `json:"roleType" db:"role_type" example:"USER"`
	Skills       []string    `json:"skills,omitempty" db:"skills"`
	SocialLinks  SocialLinks `json:"socialLinks" db:"social_links"`
	RefreshToken string      `json:"-" db:"refresh_token"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}

// SocialLinks holds a user's public profile links.
type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// IsAdmin reports whether the user holds the admin capability.
func (u *User) IsAdmin() bool {
	return u.RoleType == RoleAdmin
}
