package config

import "testing"

func TestLoadRequiresBrokerageSettings(t *testing.T) {
	t.Setenv("BROKERAGE_BASE_URL", "")
	t.Setenv("BROKERAGE_LOGIN", "user")
	t.Setenv("BROKERAGE_PASSWORD", "pass")

	if _, err := Load(); err == nil {
		t.Error("expected error without BROKERAGE_BASE_URL")
	}

	t.Setenv("BROKERAGE_BASE_URL", "https://api.example.com")
	t.Setenv("BROKERAGE_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Error("expected error without BROKERAGE_PASSWORD")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BROKERAGE_BASE_URL", "https://api.example.com")
	t.Setenv("BROKERAGE_LOGIN", "user")
	t.Setenv("BROKERAGE_PASSWORD", "pass")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_HOST", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Error("default environment must be development")
	}
	if cfg.HTTP.Addr() != "0.0.0.0:8080" {
		t.Errorf("addr = %q", cfg.HTTP.Addr())
	}
}

func TestLoadProduction(t *testing.T) {
	t.Setenv("BROKERAGE_BASE_URL", "https://api.example.com")
	t.Setenv("BROKERAGE_LOGIN", "user")
	t.Setenv("BROKERAGE_PASSWORD", "pass")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDevelopment() {
		t.Error("production must not report development")
	}
}
