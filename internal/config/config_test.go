package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppName != "getlite" {
		t.Fatalf("unexpected app_name %q", cfg.AppName)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log_level %q", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected request timeout %v", cfg.RequestTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("USER_AGENT", "probe/0.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("env override ignored, got %v", cfg.RequestTimeout)
	}
	if cfg.UserAgent != "probe/0.1" {
		t.Fatalf("env override ignored, got %q", cfg.UserAgent)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
