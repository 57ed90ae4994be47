package models

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// RegisterRequest is the body for POST /api/auth/register.
type RegisterRequest struct {
	BusinessName string `json:"business_name"`
	PhoneNumber  string `json:"phone_number"`
	Password     string `json:"password"`
}

// AuthResponse is returned by both login and register. A 2xx response
// with an empty Token is still a failure for login.
type AuthResponse struct {
	Token      string          `json:"token"`
	BusinessID string          `json:"business_id"`
	Business   BusinessProfile `json:"business"`
	User       BusinessProfile `json:"user"`
}
