package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"agriconnect-backend/internal/apperr"
	"agriconnect-backend/internal/dto"
	"agriconnect-backend/internal/models"
	"agriconnect-backend/internal/store"
)

var (
	ErrEmailTaken         = apperr.Validation("email already registered")
	ErrInvalidCredentials = apperr.Auth("Invalid credentials")
)

type AuthService struct {
	users store.UserStore
	cost  int
}

func NewAuthService(users store.UserStore, bcryptCost int) *AuthService {
	return &AuthService{users: users, cost: bcryptCost}
}

// Register stores a new account. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	req.Email = normalizeEmail(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if err := dto.Validate(req); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return apperr.Server("Registration failed", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrEmailTaken
		}
		return apperr.Server("Registration failed", err)
	}

	slog.Info("user registered", "user_id", user.ID.Hex(), "role", user.Role)
	return nil
}

// Login verifies the credentials. Unknown email and wrong password fail
// with the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperr.Server("Login failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperr.Server("Login failed", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
