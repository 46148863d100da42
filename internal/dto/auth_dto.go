package dto

import "agriconnect-backend/internal/models"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role" validate:"required,oneof=consumer producer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    models.Identity `json:"user"`
}

type SessionResponse struct {
	Success bool `json:"success"`
	models.Identity
}
