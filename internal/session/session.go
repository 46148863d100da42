// Package session keeps the caller's identity in a server-side session
// referenced by an opaque cookie.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"agriconnect-backend/internal/apperr"
	"agriconnect-backend/internal/models"
)

const (
	keyUserID   = "userId"
	keyEmail    = "email"
	keyUsername = "username"
	keyRole     = "role"
)

type Options struct {
	CookieName string
	Lifetime   time.Duration
	Secure     bool
	SameSite   http.SameSite
	Domain     string
}

type Manager struct {
	scs *scs.SessionManager
}

// NewManager builds a manager over store. The lifetime is absolute: a
// session expires Lifetime after login regardless of activity.
func NewManager(store scs.Store, opts Options) *Manager {
	sm := scs.New()
	sm.Store = store
	sm.Lifetime = opts.Lifetime
	sm.Cookie.Name = opts.CookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.Path = "/"
	sm.Cookie.Secure = opts.Secure
	sm.Cookie.SameSite = opts.SameSite
	sm.Cookie.Domain = opts.Domain
	sm.Cookie.Persist = true
	return &Manager{scs: sm}
}

// LoadAndSave loads the session for each request and writes the cookie back.
func (m *Manager) LoadAndSave(next http.Handler) http.Handler {
	return m.scs.LoadAndSave(next)
}

// Establish starts a fresh session for the identity. The token is renewed so
// a pre-login cookie can never be promoted.
func (m *Manager) Establish(ctx context.Context, id models.Identity) error {
	if err := m.scs.RenewToken(ctx); err != nil {
		return apperr.Server("Session error", err)
	}
	m.scs.Put(ctx, keyUserID, id.UserID)
	m.scs.Put(ctx, keyEmail, id.Email)
	m.scs.Put(ctx, keyUsername, id.Username)
	m.scs.Put(ctx, keyRole, id.Role)
	return nil
}

// Current returns the identity held by the request's session.
func (m *Manager) Current(ctx context.Context) (models.Identity, error) {
	email := m.scs.GetString(ctx, keyEmail)
	if email == "" {
		return models.Identity{}, apperr.Auth("Not authenticated")
	}
	return models.Identity{
		UserID:   m.scs.GetString(ctx, keyUserID),
		Email:    email,
		Username: m.scs.GetString(ctx, keyUsername),
		Role:     m.scs.GetString(ctx, keyRole),
	}, nil
}

// Destroy removes the session record and expires the cookie. It succeeds
// when there was no session.
func (m *Manager) Destroy(ctx context.Context) error {
	if err := m.scs.Destroy(ctx); err != nil {
		return apperr.Server("Error logging out", err)
	}
	return nil
}

func (m *Manager) CookieName() string {
	return m.scs.Cookie.Name
}
