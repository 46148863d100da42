package handlers

import (
	"log/slog"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"agriconnect-backend/internal/apperr"
	"agriconnect-backend/internal/dto"
	"agriconnect-backend/internal/middleware"
	"agriconnect-backend/internal/models"
)

var errSessionMismatch = apperr.Forbidden("Email does not match the logged in account")

// respondError converts a failure into the {success:false, message} body.
// Server failures are logged and reported; client failures are not.
func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", middleware.GetRequestID(c),
			"error", err,
		)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}
	c.JSON(status, dto.StatusResponse{Success: false, Message: apperr.Message(err)})
}

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return dto.BindError(err)
	}
	return nil
}

// caller is only reached behind RequireSession.
func caller(c *gin.Context) (models.Identity, error) {
	id, ok := middleware.Identity(c)
	if !ok {
		return models.Identity{}, apperr.Auth("Not authenticated")
	}
	return id, nil
}
