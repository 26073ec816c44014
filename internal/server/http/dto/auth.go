package dto

import "github.com/vantran-dev/storefront/internal/domain/model"

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public account representation.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthResponse couples the account with its bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse maps a user model onto its public representation.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

// NewAuthResponse maps a user and issued token onto the auth payload.
func NewAuthResponse(u *model.User, token string) AuthResponse {
	return AuthResponse{User: NewUserResponse(u), Token: token}
}
