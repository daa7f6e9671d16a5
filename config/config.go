package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	DataDir                 string
	Backend                 string
	DatabaseURL             string
	ServerAddr              string
	JWTSecret               string
	SessionTTL              time.Duration
	FirebaseCredentialsPath string
	LogLevel                string
}

// Load reads .env.local then .env (existing variables always win) and
// fills the config from the environment.
func Load() Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg := Config{
		DataDir:                 getenv("SOCIAL_DATA_DIR", "."),
		Backend:                 getenv("SOCIAL_BACKEND", BackendFile),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		ServerAddr:              getenv("SERVER_ADDR", ":8080"),
		JWTSecret:               getenv("JWT_SECRET", "dev-secret-change-me"),
		FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		LogLevel:                getenv("LOG_LEVEL", "info"),
		SessionTTL:              24 * time.Hour,
	}

	if ttl, err := time.ParseDuration(os.Getenv("SESSION_TTL")); err == nil && ttl > 0 {
		cfg.SessionTTL = ttl
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
