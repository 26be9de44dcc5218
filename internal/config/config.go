package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Store StoreConfig
	App   AppConfig
}

// StoreConfig holds the remote data store connection settings.
type StoreConfig struct {
	URL     string
	Key     string
	Timeout time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// .env is optional; variables may come from the process environment.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Remote store configuration
	storeTimeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
	}

	config.Store = StoreConfig{
		URL:     getEnv("SUPABASE_URL", ""),
		Key:     getEnv("SUPABASE_KEY", ""),
		Timeout: storeTimeout,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.Store.Key == "" {
		return fmt.Errorf("SUPABASE_KEY is required")
	}
	return nil
}

// RestURL returns the base URL of the store's REST interface.
func (c *Config) RestURL() string {
	return strings.TrimSuffix(c.Store.URL, "/") + "/rest/v1"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
