// ABOUTME: Configuration loader for the admin console
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is the backend address used when nothing else is configured
const DefaultAPIURL = "http://localhost:5000"

type Config struct {
	// API
	APIBaseURL     string // base URL of the Acasa REST API
	RequestTimeout int    // seconds, per-request HTTP timeout (default 30)

	// OAuth Client (for Google sign-in exchange)
	OAuthClientID string

	// Storage
	CredentialsPath string // where bearer tokens are persisted

	// Cache
	SettingsTTL int // seconds, TTL for the site-settings cache (default 300)

	// Logging
	Debug bool
}

func Load() (*Config, error) {
	// A missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:      ensureScheme(getEnv("ACASA_API_URL", DefaultAPIURL)),
		RequestTimeout:  getEnvInt("ACASA_REQUEST_TIMEOUT", 30),
		OAuthClientID:   os.Getenv("ACASA_OAUTH_CLIENT_ID"),
		CredentialsPath: getEnv("ACASA_CREDENTIALS_PATH", defaultCredentialsPath()),
		SettingsTTL:     getEnvInt("ACASA_SETTINGS_CACHE_TTL", 300),
		Debug:           getEnvBool("ACASA_DEBUG", false),
	}

	if cfg.RequestTimeout < 1 || cfg.RequestTimeout > 600 {
		return nil, fmt.Errorf("ACASA_REQUEST_TIMEOUT must be between 1 and 600, got %d", cfg.RequestTimeout)
	}
	if cfg.SettingsTTL < 1 {
		return nil, fmt.Errorf("ACASA_SETTINGS_CACHE_TTL must be positive, got %d", cfg.SettingsTTL)
	}

	return cfg, nil
}

// defaultCredentialsPath returns the per-user credentials file location
func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".acasa-adminctl", "credentials.json")
	}
	return filepath.Join(dir, "acasa-adminctl", "credentials.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// ensureScheme adds http:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "http://" + url
	}
	return strings.TrimRight(url, "/")
}
