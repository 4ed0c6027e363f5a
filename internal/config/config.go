package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// OpenAI (primary generation backend)
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAIQuality string

	// Replicate (secondary / fallback generation backend, optional)
	ReplicateAPIToken        string
	ReplicatePollingInterval time.Duration
	ReplicatePollingTimeout  time.Duration

	// Processing
	GenerateAttempts  int           // attempts per backend per image
	InterRequestDelay time.Duration // pause between generation calls within one order
	BackoffBaseWait   time.Duration // initial backoff after a retryable failure
	SupervisorPeriod  time.Duration
	ReaperPeriod      time.Duration
	ResultImageTTL    time.Duration

	// Email
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Admin API
	AdminJWTSecret string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string
	UploadDir   string
}

func Load() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:   getEnv("OPENAI_STYLIZE_MODEL", "gpt-image-1.5"),
		OpenAIQuality: getEnv("OPENAI_STYLIZE_QUALITY", "low"),

		ReplicateAPIToken:        getEnv("REPLICATE_API_TOKEN", ""),
		ReplicatePollingInterval: getDuration("REPLICATE_POLLING_INTERVAL", 5*time.Second),
		ReplicatePollingTimeout:  getDuration("REPLICATE_POLLING_TIMEOUT", 5*time.Minute),

		GenerateAttempts:  getInt("GENERATE_ATTEMPTS", 3),
		InterRequestDelay: getDuration("INTER_REQUEST_DELAY", 30*time.Second),
		BackoffBaseWait:   getDuration("BACKOFF_BASE_WAIT", 15*time.Second),
		SupervisorPeriod:  getDuration("SUPERVISOR_PERIOD", 20*time.Second),
		ReaperPeriod:      getDuration("REAPER_PERIOD", 24*time.Hour),
		ResultImageTTL:    getDuration("RESULT_IMAGE_TTL", 14*24*time.Hour),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "hello@artify.example"),
		FromName:     getEnv("FROM_NAME", "Artify"),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.AdminJWTSecret == "" {
		return fmt.Errorf("ADMIN_JWT_SECRET is required")
	}
	if c.GenerateAttempts < 1 {
		return fmt.Errorf("GENERATE_ATTEMPTS must be at least 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
