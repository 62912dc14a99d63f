package dto

import "github.com/shopworks/storefront/internal/domain/model"

// SignupRequest describes the signup payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload is the identity shape echoed back by auth endpoints. The
// password hash never leaves the server.
type UserPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewUserPayload converts a domain user into its response shape.
func NewUserPayload(user *model.User) UserPayload {
	return UserPayload{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
