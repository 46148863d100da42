package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"agriconnect-backend/internal/dto"
	"agriconnect-backend/internal/services"
	"agriconnect-backend/internal/session"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Register - POST /registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.authService.Register(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StatusResponse{Success: true, Message: "User registered successfully"})
}

// Login - POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	id := user.Identity()
	if err := h.sessions.Establish(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	slog.Info("user logged in", "user_id", id.UserID, "role", id.Role)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Message: "Login successful", User: id})
}

// Logout - POST /logout. Succeeds whether or not a session existed.
func (h *AuthHandler) Logout(c *gin.Context) {
	_, noSession := h.sessions.Current(c.Request.Context())
	if err := h.sessions.Destroy(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	msg := "Logged out successfully"
	if noSession != nil {
		msg = "Already logged out"
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: msg})
}

// Session - GET /session
func (h *AuthHandler) Session(c *gin.Context) {
	id, err := caller(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if email := c.Query("email"); email != "" && !sameEmail(email, id.Email) {
		respondError(c, errSessionMismatch)
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Success: true, Identity: id})
}
