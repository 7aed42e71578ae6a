package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App           AppConfig
	API           APIConfig
	State         StateConfig
	Notifications NotificationConfig
}

// AppConfig holds local agent configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// APIConfig holds remote Dayflow API configuration
type APIConfig struct {
	BaseURL string
}

// StateConfig holds local persistence configuration
type StateConfig struct {
	DBPath string
}

// NotificationConfig holds feed aggregation configuration
type NotificationConfig struct {
	PollInterval time.Duration
}

func Load() (*Config, error) {
	// A .env file is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("AGENT_PORT", "8090"))
	if err != nil {
		return nil, fmt.Errorf("invalid AGENT_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.API = APIConfig{
		BaseURL: getEnv("DAYFLOW_API_URL", "http://localhost:8000"),
	}

	config.State = StateConfig{
		DBPath: getEnv("STATE_DB_PATH", "dayflow-agent.db"),
	}

	pollInterval, err := time.ParseDuration(getEnv("POLL_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
	}
	config.Notifications = NotificationConfig{
		PollInterval: pollInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("DAYFLOW_API_URL is required")
	}
	if c.State.DBPath == "" {
		return fmt.Errorf("STATE_DB_PATH is required")
	}
	if c.Notifications.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
