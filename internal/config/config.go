package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	MaildropAPIURL string

	GoogleClientID     string
	GoogleClientSecret string
	GmailRefreshToken  string
	GmailBatchSize     int
	GmailBatchPause    time.Duration

	ResendAPIURL string
	ResendAPIKey string
	ResendFrom   string

	Env string
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	batchSize, err := strconv.Atoi(GetEnv("GMAIL_BATCH_SIZE", "5"))
	if err != nil {
		return nil, fmt.Errorf("GMAIL_BATCH_SIZE must be an integer: %w", err)
	}
	batchPause, err := time.ParseDuration(GetEnv("GMAIL_BATCH_PAUSE", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("GMAIL_BATCH_PAUSE must be a duration: %w", err)
	}

	return &Config{
		Port:               GetEnv("PORT", "8080"),
		DatabaseURL:        GetEnv("DATABASE_URL", ""),
		MaildropAPIURL:     GetEnv("MAILDROP_API_URL", "https://api.maildrop.cc/graphql"),
		GoogleClientID:     GetEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: GetEnv("GOOGLE_CLIENT_SECRET", ""),
		GmailRefreshToken:  GetEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailBatchSize:     batchSize,
		GmailBatchPause:    batchPause,
		ResendAPIURL:       GetEnv("RESEND_API_URL", "https://api.resend.com"),
		ResendAPIKey:       GetEnv("RESEND_API_KEY", ""),
		ResendFrom:         GetEnv("RESEND_FROM", "onboarding@resend.dev"),
		Env:                GetEnv("ENV", "development"),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GmailConfigured reports whether enough OAuth material is present to build
// the Gmail adapter. Maildrop-only deployments leave these unset.
func (c *Config) GmailConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GmailRefreshToken != ""
}

func (c *Config) Validate() error {
	if c.GmailBatchSize <= 0 {
		return fmt.Errorf("GMAIL_BATCH_SIZE must be positive")
	}
	if c.ResendAPIKey != "" && c.ResendFrom == "" {
		return fmt.Errorf("RESEND_FROM is required when RESEND_API_KEY is set")
	}
	return nil
}
