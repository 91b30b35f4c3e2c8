package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	JWTSecret      string
	TokenTTL       time.Duration
	CookieName     string
	MongoURI       string
	DBName         string
	SkipAuth       bool
	Environment    string
	AppId          string
	ReportingDBURL string // Postgres warehouse for donation/expense exports
	ExportSchedule string // cron spec for the nightly warehouse export
}

// LoadConfig loads configuration from environment variables.
// JWT_SECRET and MONGO_URI are required outside development.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       ttl,
		CookieName:     getEnv("COOKIE_NAME", "access_token"),
		MongoURI:       getEnv("MONGO_URI", ""),
		DBName:         getEnv("DB_NAME", "go-temple"),
		SkipAuth:       getEnv("SKIP_AUTH", "false") == "true",
		Environment:    getEnv("ENVIRONMENT", "development"),
		AppId:          getEnv("APP_ID", "go-temple"),
		ReportingDBURL: getEnv("REPORTING_DB_URL", ""),
		ExportSchedule: getEnv("EXPORT_SCHEDULE", "0 2 * * *"),
	}

	if cfg.Environment == "development" {
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = "secret"
		}
		if cfg.MongoURI == "" {
			cfg.MongoURI = "mongodb://localhost:27017"
		}
	}

	// The token issuer and every protected route depend on these two; a
	// missing value is a startup failure, not a per-request one.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
