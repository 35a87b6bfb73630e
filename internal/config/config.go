package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Lexicon resource: a URL takes precedence over the local file path
	LexiconURL  string
	LexiconPath string

	// Scoring configuration
	ExplicitMoodWeight int // lexicon hits one explicit mood selection is worth
	TopMoods           int
	DefaultWindowDays  int

	// Schedule configuration
	ReportSchedule string // "daily" or "weekly"

	// Azure Storage configuration
	StorageAccount   string
	StorageContainer string

	// Notification configuration
	ReportWebhookURL  string
	NotificationEmail string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		LexiconURL:  getEnv("LEXICON_URL", ""),
		LexiconPath: getEnv("LEXICON_PATH", "wne_lexicon_en.json"),

		ExplicitMoodWeight: getIntEnv("EXPLICIT_MOOD_WEIGHT", 3),
		TopMoods:           getIntEnv("TOP_MOODS", 3),
		DefaultWindowDays:  getIntEnv("DEFAULT_WINDOW_DAYS", 7),

		ReportSchedule: getEnv("REPORT_SCHEDULE", "weekly"),

		StorageAccount:   getEnv("AZURE_STORAGE_ACCOUNT", ""),
		StorageContainer: getEnv("AZURE_STORAGE_CONTAINER", "journal"),

		ReportWebhookURL:  getEnv("REPORT_WEBHOOK_URL", ""),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getIntEnv("SMTP_PORT", 587),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ReportSchedule != "daily" && c.ReportSchedule != "weekly" {
		return fmt.Errorf("REPORT_SCHEDULE must be 'daily' or 'weekly'")
	}

	if c.ExplicitMoodWeight < 0 {
		return fmt.Errorf("EXPLICIT_MOOD_WEIGHT must not be negative")
	}

	if c.TopMoods < 1 {
		return fmt.Errorf("TOP_MOODS must be at least 1")
	}

	if c.DefaultWindowDays < 0 {
		return fmt.Errorf("DEFAULT_WINDOW_DAYS must not be negative")
	}

	if c.NotificationEmail != "" {
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("SMTP configuration is required when NOTIFICATION_EMAIL is set")
		}
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
