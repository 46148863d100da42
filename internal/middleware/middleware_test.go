package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"agriconnect-backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, given)
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, given, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not a uuid")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "not a uuid", seen)
}

func TestRequireRole(t *testing.T) {
	withIdentity := func(id *models.Identity) gin.HandlerFunc {
		return func(c *gin.Context) {
			if id != nil {
				c.Set(identityKey, *id)
			}
			c.Next()
		}
	}

	tests := []struct {
		name string
		id   *models.Identity
		want int
	}{
		{"no identity", nil, http.StatusUnauthorized},
		{"consumer", &models.Identity{Email: "bob@x.com", Role: models.RoleConsumer}, http.StatusForbidden},
		{"producer", &models.Identity{Email: "alice@x.com", Role: models.RoleProducer}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", withIdentity(tt.id), RequireRole(models.RoleProducer), func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
