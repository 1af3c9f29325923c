// ABOUTME: Tests for configuration loading
// ABOUTME: Verifies defaults, env overrides, and validation errors

package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Errorf("expected default API URL, got %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 30 {
		t.Errorf("expected default timeout 30, got %d", cfg.RequestTimeout)
	}
	if cfg.SettingsTTL != 300 {
		t.Errorf("expected default settings TTL 300, got %d", cfg.SettingsTTL)
	}
	if cfg.CredentialsPath == "" {
		t.Error("expected a credentials path")
	}
	if !strings.Contains(cfg.CredentialsPath, "acasa-adminctl") {
		t.Errorf("credentials path should be app-scoped, got %q", cfg.CredentialsPath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ACASA_API_URL", "api.acasa.example")
	t.Setenv("ACASA_REQUEST_TIMEOUT", "5")
	t.Setenv("ACASA_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("ACASA_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIBaseURL != "http://api.acasa.example" {
		t.Errorf("expected scheme to be added, got %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 5 {
		t.Errorf("expected timeout 5, got %d", cfg.RequestTimeout)
	}
	if cfg.CredentialsPath != "/tmp/creds.json" {
		t.Errorf("expected overridden credentials path, got %q", cfg.CredentialsPath)
	}
	if !cfg.Debug {
		t.Error("expected debug enabled")
	}
}

func TestLoad_TrailingSlashTrimmed(t *testing.T) {
	t.Setenv("ACASA_API_URL", "https://api.acasa.example/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.acasa.example" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("ACASA_REQUEST_TIMEOUT", "0")

	if _, err := Load(); err == nil {
		t.Error("expected error for zero timeout")
	}
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"localhost:5000", "http://localhost:5000"},
		{"https://api.acasa.example", "https://api.acasa.example"},
		{"http://api.acasa.example/", "http://api.acasa.example"},
	}

	for _, tt := range tests {
		if got := ensureScheme(tt.in); got != tt.want {
			t.Errorf("ensureScheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
