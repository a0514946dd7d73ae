package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken      string
	LoginDelay    time.Duration
	MetricsAddr   string
	RetentionDays int
	Database      DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	delay, err := parseLoginDelay(getEnv("LOGIN_DELAY", "3s"))
	if err != nil {
		return nil, fmt.Errorf("LOGIN_DELAY: %w", err)
	}

	retention, err := strconv.Atoi(getEnv("ATTEMPT_RETENTION_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("ATTEMPT_RETENTION_DAYS is not a number: %w", err)
	}
	if retention <= 0 {
		return nil, fmt.Errorf("ATTEMPT_RETENTION_DAYS must be positive")
	}

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		LoginDelay:    delay,
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
		RetentionDays: retention,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "loginscreen"),
			User:     getEnv("DB_USER", "loginscreen"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	return cfg, nil
}

// OverrideLoginDelay replaces the login delay, e.g. from a command line flag
func (c *Config) OverrideLoginDelay(value string) error {
	delay, err := parseLoginDelay(value)
	if err != nil {
		return fmt.Errorf("login delay: %w", err)
	}
	c.LoginDelay = delay
	return nil
}

// RequireBot validates the fields the Telegram bot cannot run without
func (c *Config) RequireBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func parseLoginDelay(value string) (time.Duration, error) {
	delay, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("not a valid duration: %w", err)
	}
	if delay <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", delay)
	}
	return delay, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
