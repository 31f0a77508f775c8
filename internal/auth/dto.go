package auth

import (
	"github.com/tabledesk/tabledesk-backend/internal/users"
)

// RegisterRequest captures the payload for creating an account. Field
// presence is checked in the service so the legacy error messages hold.
type RegisterRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	ContactInfo *string `json:"contact_info,omitempty"`
}

// RegisterResponse carries the id of the newly created user.
type RegisterResponse struct {
	UserID uint `json:"user_id"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse contains the token and profile produced by a successful login.
type LoginResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}
