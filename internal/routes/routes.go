package routes

import (
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"agriconnect-backend/internal/handlers"
	"agriconnect-backend/internal/middleware"
	"agriconnect-backend/internal/models"
	"agriconnect-backend/internal/session"
)

type Options struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

type Handlers struct {
	Auth     *handlers.AuthHandler
	Products *handlers.ProductHandler
	Messages *handlers.MessageHandler
	Health   *handlers.HealthHandler
}

// New builds the HTTP handler: the gin router wrapped in session loading.
func New(opts Options, sessions *session.Manager, h Handlers) http.Handler {
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.SecurityHeaders())
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	authed := middleware.RequireSession(sessions)
	producer := middleware.RequireRole(models.RoleProducer)
	consumer := middleware.RequireRole(models.RoleConsumer)

	r.GET("/health", h.Health.Check)

	// Auth
	r.POST("/registration", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/session", authed, h.Auth.Session)

	// Catalog (public)
	r.GET("/products_data", h.Products.List)
	r.GET("/filter", h.Products.Filter)
	r.GET("/products/:id", h.Products.Get)

	// Producer
	r.POST("/products", authed, producer, h.Products.Create)
	r.GET("/myproducts", authed, producer, h.Products.ListMine)
	r.PUT("/products/:id", authed, producer, h.Products.Update)
	r.DELETE("/myproducts/:id", authed, producer, h.Products.Delete)
	r.GET("/get-comments", authed, producer, h.Messages.Comments)

	// Consumer
	r.POST("/send-message", authed, consumer, h.Messages.Send)

	return sessions.LoadAndSave(r)
}
