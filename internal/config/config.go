package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	defaultEnv      = "development"
	defaultHTTPHost = "0.0.0.0"
	defaultHTTPPort = 8080
)

// Config keeps the runtime configuration for the service.
type Config struct {
	Env       string
	HTTP      HTTPConfig
	Brokerage BrokerageConfig
}

// IsDevelopment reports whether the service runs in a local development
// environment. Cookie security attributes are relaxed only in this mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == defaultEnv
}

// HTTPConfig holds HTTP server related settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renders the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// BrokerageConfig stores the upstream brokerage API endpoint and the
// service account credentials used for authentication.
type BrokerageConfig struct {
	BaseURL  string
	Login    string
	Password string
}

// Load builds Config from environment variables.
func Load() (*Config, error) {
	host := getString("HTTP_HOST", defaultHTTPHost)
	port, err := getInt("HTTP_PORT", defaultHTTPPort)
	if err != nil {
		return nil, fmt.Errorf("parse HTTP_PORT: %w", err)
	}

	baseURL := os.Getenv("BROKERAGE_BASE_URL")
	if baseURL == "" {
		return nil, errors.New("BROKERAGE_BASE_URL is required")
	}
	login := os.Getenv("BROKERAGE_LOGIN")
	password := os.Getenv("BROKERAGE_PASSWORD")
	if login == "" || password == "" {
		return nil, errors.New("BROKERAGE_LOGIN and BROKERAGE_PASSWORD are required")
	}

	return &Config{
		Env:  getString("APP_ENV", defaultEnv),
		HTTP: HTTPConfig{Host: host, Port: port},
		Brokerage: BrokerageConfig{
			BaseURL:  baseURL,
			Login:    login,
			Password: password,
		},
	}, nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}
