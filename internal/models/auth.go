package models

import "time"

// LoginRequest represents credentials provided by the client.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents a new account submission.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ActivateRequest redeems a pro access code. Codes are issued manually
// after a payment notification and are bound to the purchaser's email.
type ActivateRequest struct {
	AccessCode string `json:"access_code"`
}

// UserDTO is a minimal user representation for responses.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	IsPro    bool   `json:"is_pro"`
}

// LoginResponse is returned upon successful authentication or activation.
type LoginResponse struct {
	Token     string    `json:"token"`
	User      UserDTO   `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ErrorResponse is a simple error shape for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
