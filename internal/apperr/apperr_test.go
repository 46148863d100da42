package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"auth", Auth("who"), http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"server", Server("boom", errors.New("db down")), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", Forbidden("no")), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestMessageHidesServerCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Server("Error fetching products", cause)

	assert.Equal(t, "Error fetching products", Message(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error", Message(cause))
}

func TestIs(t *testing.T) {
	assert.True(t, Is(NotFound("x"), KindNotFound))
	assert.False(t, Is(NotFound("x"), KindForbidden))
	assert.False(t, Is(nil, KindServer))
	assert.Equal(t, "not_found", KindNotFound.String())
}
