package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes the configuration values the application reads at runtime.
// Handlers and modules depend on this interface rather than on *Config so
// tests can substitute their own values.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetContentPath() string
	GetContentWatch() bool
	GetDefaultTheme() string
	GetSubmitDelay() time.Duration
	GetResetDelay() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	AppBaseURL    string
	SessionSecret string
	LogFormat     string
	LogLevel      string
	ContentPath   string
	ContentWatch  bool
	DefaultTheme  string
	SubmitDelay   time.Duration
	ResetDelay    time.Duration
}

const (
	defaultServerAddr    = ":8080"
	defaultAppBaseURL    = "http://localhost:8080"
	defaultSessionSecret = "folio-dev-session-secret-change-me"
	defaultSubmitDelay   = 2 * time.Second
	defaultResetDelay    = 3 * time.Second
)

// New loads configuration from environment variables, reading a .env file
// first when one exists.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the current environment without touching
// .env files. Unset values fall back to development defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ServerAddr:    getenv("SERVER_ADDR", defaultServerAddr),
		AppBaseURL:    getenv("APP_BASE_URL", defaultAppBaseURL),
		SessionSecret: getenv("SESSION_SECRET", defaultSessionSecret),
		LogFormat:     getenv("LOG_FORMAT", "text"),
		LogLevel:      getenv("LOG_LEVEL", "debug"),
		ContentPath:   os.Getenv("CONTENT_PATH"),
		DefaultTheme:  getenv("DEFAULT_THEME", "system"),
		SubmitDelay:   defaultSubmitDelay,
		ResetDelay:    defaultResetDelay,
	}

	var err error
	if v := os.Getenv("CONTENT_WATCH"); v != "" {
		if cfg.ContentWatch, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("CONTENT_WATCH: %w", err)
		}
	}
	if v := os.Getenv("CONTACT_SUBMIT_DELAY"); v != "" {
		if cfg.SubmitDelay, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("CONTACT_SUBMIT_DELAY: %w", err)
		}
	}
	if v := os.Getenv("CONTACT_RESET_DELAY"); v != "" {
		if cfg.ResetDelay, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("CONTACT_RESET_DELAY: %w", err)
		}
	}
	if cfg.SubmitDelay <= 0 || cfg.ResetDelay <= 0 {
		return nil, fmt.Errorf("contact delays must be positive (submit=%s, reset=%s)", cfg.SubmitDelay, cfg.ResetDelay)
	}
	if len(cfg.SessionSecret) < 16 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 16 bytes")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetServerAddr() string         { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string         { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetLogFormat() string          { return c.LogFormat }
func (c *Config) GetLogLevel() string           { return c.LogLevel }
func (c *Config) GetContentPath() string        { return c.ContentPath }
func (c *Config) GetContentWatch() bool         { return c.ContentWatch }
func (c *Config) GetDefaultTheme() string       { return c.DefaultTheme }
func (c *Config) GetSubmitDelay() time.Duration { return c.SubmitDelay }
func (c *Config) GetResetDelay() time.Duration  { return c.ResetDelay }
