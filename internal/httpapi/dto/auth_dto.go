package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Password  string `json:"password" binding:"required,min=8,max=20"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"omitempty,max=30"`
	LastName  string `json:"last_name" binding:"omitempty,max=150"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: response payload after successful authentication
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// RefreshTokenRequest: payload for refreshing the access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponse: response payload after refreshing the access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// ChangePasswordRequest: payload for a password change; the old password
// is re-verified before anything is written.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,max=20"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=20"`
}

// UpdateProfileRequest: payload for profile edits.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,max=30"`
	LastName  string `json:"last_name" binding:"omitempty,max=150"`
	Email     string `json:"email" binding:"required,email"`
}
