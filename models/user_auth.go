package models

import "time"

// Role values stored on users and carried in tokens.
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

// Provider values for how an account signs in.
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User represents an account row
// @Description User account information
type User struct {
	ID           int64     `json:"id" example:"1"`
	Email        string    `json:"email" example:"user@example.com"`
	Name         string    `json:"name" example:"John Doe"`
	Role         string    `json:"role" example:"candidate"`
	PasswordHash string    `json:"-"` // never sent to client
	Provider     string    `json:"provider" example:"email"`
	GoogleID     string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Name     string `json:"name" binding:"required" example:"John Doe"`
	Role     string `json:"role" binding:"required,oneof=candidate employer" example:"candidate"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
	Role     string `json:"role" binding:"required,oneof=candidate employer" example:"candidate"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Role    string `json:"role" binding:"required,oneof=candidate employer" example:"employer"`
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Login successful"`
}

// ProfileResponse represents the signed-in account
// @Description Account response
type ProfileResponse struct {
	User          *User `json:"user"`
	PremiumActive bool  `json:"premiumActive"`
}
