package config

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	// MinBcryptCost is the lowest hashing cost the server accepts.
	MinBcryptCost = 12
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:3004",
	"https://miniprojectim.vercel.app",
}

type Config struct {
	// Server
	Port           string
	AppEnv         string
	RequestTimeout time.Duration
	CORSOrigins    []string

	// Store
	StoreDriver string
	MongoURI    string
	MongoDB     string

	// Session cookie
	SessionSecret   string
	SessionCookie   string
	SessionLifetime time.Duration
	CookieSecure    bool
	CookieSameSite  string
	CookieDomain    string

	BcryptCost int

	LogLevel  string
	SentryDSN string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}

	cost := parseInt(getEnv("BCRYPT_COST", ""), MinBcryptCost)
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}

	return &Config{
		Port:           getEnv("PORT", "3001"),
		AppEnv:         getEnv("APP_ENV", "development"),
		RequestTimeout: parseDuration(getEnv("REQUEST_TIMEOUT", "10s"), 10*time.Second),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", ""), defaultOrigins),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "agriconnect"),

		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionCookie:   getEnv("SESSION_COOKIE_NAME", "connect.sid"),
		SessionLifetime: parseDuration(getEnv("SESSION_LIFETIME", "24h"), 24*time.Hour),
		CookieSecure:    parseBool(getEnv("COOKIE_SECURE", "false")),
		CookieSameSite:  strings.ToLower(getEnv("COOKIE_SAMESITE", "lax")),
		CookieDomain:    getEnv("COOKIE_DOMAIN", ""),

		BcryptCost: cost,

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.SessionSecret == "" {
			return errors.New("SESSION_SECRET environment variable is required")
		}
	case DriverMemory:
	default:
		return errors.New("STORE_DRIVER must be one of mongo, memory")
	}

	mode, err := c.SameSite()
	if err != nil {
		return err
	}
	if mode == http.SameSiteNoneMode && !c.CookieSecure {
		return errors.New("COOKIE_SAMESITE=none requires COOKIE_SECURE=true")
	}
	return nil
}

// SameSite translates CookieSameSite into its net/http mode.
func (c *Config) SameSite() (http.SameSite, error) {
	switch c.CookieSameSite {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, errors.New("COOKIE_SAMESITE must be one of lax, strict, none")
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func splitList(s string, fallback []string) []string {
	if s == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
