package dto

import "github.com/selim/groupdesk/internal/app/models"

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the POST /login success envelope.
type LoginResponse struct {
	Success   bool         `json:"success"`
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"`
}
