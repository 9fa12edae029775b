// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"worldtime-service/internal/domain/entity"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Catalog storage: "postgres", "sqlite" or "mongo"
	DBDriver    string
	PostgresURI string
	SQLiteDSN   string
	MongoURI    string
	MongoDB     string

	// Timezone model: "iana" (tz database, DST aware) or "fixed" (catalog offsets)
	TZModel string

	// Sessions
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	// Background removal relay
	RemoveBgAPIKey   string
	RemoveBgEndpoint string
	RemoveBgTimeout  time.Duration
	MaxUploadBytes   int64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		PostgresURI: getEnv("POSTGRES_URI", "postgres://localhost:5432/worldtime?sslmode=disable"),
		SQLiteDSN:   getEnv("SQLITE_DSN", "file::memory:?cache=shared"),
		MongoURI:    getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "worldtime"),

		TZModel: strings.ToLower(getEnv("TZ_MODEL", "iana")),

		SessionTTL:           time.Duration(getEnvAsInt("SESSION_TTL", 1800)) * time.Second,
		SessionSweepInterval: time.Duration(getEnvAsInt("SESSION_SWEEP_INTERVAL", 60)) * time.Second,

		RemoveBgAPIKey:   getEnv("REMOVE_BG_API_KEY", ""),
		RemoveBgEndpoint: getEnv("REMOVE_BG_ENDPOINT", "https://api.remove.bg/v1.0/removebg"),
		RemoveBgTimeout:  time.Duration(getEnvAsInt("REMOVE_BG_TIMEOUT", 60)) * time.Second,
		MaxUploadBytes:   int64(getEnvAsInt("MAX_UPLOAD_MB", 10)) << 20,
	}

	if config.TZModel != entity.TZModelIANA && config.TZModel != entity.TZModelFixed {
		return nil, fmt.Errorf("invalid TZ_MODEL %q: want %q or %q", config.TZModel, entity.TZModelIANA, entity.TZModelFixed)
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
