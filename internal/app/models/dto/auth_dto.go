package dto

// RegisterRequest represents the data needed to create an account.
// An optional avatar arrives as a multipart file alongside these fields.
type RegisterRequest struct {
	RegNumber string `form:"regNumber" binding:"required,alphanum,min=4,max=20"`
	Username  string `form:"username" binding:"required,alphanum,min=3,max=30"`
	FullName  string `form:"fullname" binding:"required,min=2,max=100"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents credentials for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token to exchange.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken      string        `json:"accessToken"`
	RefreshToken     string        `json:"refreshToken"`
	ExpiresIn        int           `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int           `json:"refreshExpiresIn" example:"2592000"`
	User             *UserResponse `json:"user"`
}
