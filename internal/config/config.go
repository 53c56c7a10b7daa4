// README: Config loader with env defaults for HTTP, Redis, logging, and AI settings.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	Log struct {
		Level  string
		Format string
	}
	AI struct {
		GeminiKey string
		Persona   string
	}
}

// ErrMissingAPIKey is returned when the required Gemini credential is absent.
// This is the only startup-fatal condition; callers must abort before
// accepting any input.
var ErrMissingAPIKey = errors.New("environment variable GEMINI_API_KEY is required")

func Load() (Config, error) {
	// .env is optional; real env vars always win.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("CONCIERGE_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("CONCIERGE_REDIS_ADDR", "localhost:6379")
	cfg.Log.Level = envOrDefault("CONCIERGE_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("CONCIERGE_LOG_FORMAT", "console")
	cfg.AI.Persona = envOrDefault("CONCIERGE_PERSONA", "a friendly booking assistant for a restaurant and hotel business")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	if cfg.AI.GeminiKey == "" {
		return cfg, ErrMissingAPIKey
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
