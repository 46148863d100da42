package middleware

import (
	"github.com/gin-gonic/gin"

	"agriconnect-backend/internal/apperr"
	"agriconnect-backend/internal/dto"
	"agriconnect-backend/internal/models"
	"agriconnect-backend/internal/session"
)

const identityKey = "identity"

// RequireSession rejects requests without a server-side session and stores
// the session identity on the context.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := sessions.Current(c.Request.Context())
		if err != nil {
			abort(c, err)
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireRole must run after RequireSession.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok {
			abort(c, apperr.Auth("Not authenticated"))
			return
		}
		if id.Role != role {
			abort(c, apperr.Forbidden("This action requires a "+role+" account"))
			return
		}
		c.Next()
	}
}

func Identity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.Status(err), dto.StatusResponse{
		Success: false,
		Message: apperr.Message(err),
	})
}
