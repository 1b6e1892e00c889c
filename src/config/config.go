package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	LogLevel           string
	MaxUploadSizeBytes int64

	// Sessions are held in memory only and dropped after SessionTTL of inactivity.
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	AllowedOrigins []string
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")
	Cfg = buildConfig()

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, SessionTTL=%s, MaxUpload=%d",
		Cfg.Port, Cfg.LogLevel, Cfg.SessionTTL, Cfg.MaxUploadSizeBytes)
}

func buildConfig() *AppConfig {
	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil || maxUploadSizeBytes <= 0 {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps <= 0 {
		log.Printf("WARNING: Invalid RATE_LIMIT_RPS. Using default 10. Error: %v", err)
		rps = 10
	}

	return &AppConfig{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MaxUploadSizeBytes: maxUploadSizeBytes,

		SessionTTL:             getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SessionCleanupInterval: getEnvAsDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),

		RateLimitRPS:   rps,
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 30),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
