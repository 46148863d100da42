package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"agriconnect-backend/internal/config"
	"agriconnect-backend/internal/handlers"
	"agriconnect-backend/internal/logging"
	"agriconnect-backend/internal/routes"
	"agriconnect-backend/internal/services"
	"agriconnect-backend/internal/session"
	"agriconnect-backend/internal/store"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Store and session backend
	var (
		db           store.Store
		sessionStore scs.Store
		shutdownDB   = func(context.Context) error { return nil }
	)
	switch cfg.StoreDriver {
	case config.DriverMemory:
		slog.Warn("using in-memory store; data is lost on restart")
		db = store.NewMemory()
		sessionStore = memstore.New()
	default:
		mongoDB, err := store.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if err := mongoDB.EnsureIndexes(context.Background()); err != nil {
			slog.Error("index creation failed", "error", err)
			os.Exit(1)
		}
		db = mongoDB
		sessionStore = store.NewSessionStore(mongoDB.Sessions, cfg.SessionSecret)
		shutdownDB = mongoDB.Disconnect
	}

	sameSite, _ := cfg.SameSite()
	sessions := session.NewManager(sessionStore, session.Options{
		CookieName: cfg.SessionCookie,
		Lifetime:   cfg.SessionLifetime,
		Secure:     cfg.CookieSecure,
		SameSite:   sameSite,
		Domain:     cfg.CookieDomain,
	})

	// Services
	authService := services.NewAuthService(db, cfg.BcryptCost)
	productService := services.NewProductService(db)
	messageService := services.NewMessageService(db, db, db)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	handler := routes.New(routes.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}, sessions, routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, sessions),
		Products: handlers.NewProductHandler(productService),
		Messages: handlers.NewMessageHandler(messageService),
		Health:   handlers.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	sentry.Flush(2 * time.Second)
	if err := shutdownDB(ctx); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
