package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CURSOR_ARCHIVE_PORT", "")
	t.Setenv("CURSOR_ARCHIVE_STORAGE", "")
	t.Setenv("CURSOR_ARCHIVE_SEARCH_URL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.Port != 8260 {
		t.Errorf("Port = %d, want 8260", cfg.Port)
	}
	if cfg.StoragePath != "" {
		t.Errorf("StoragePath = %q, want empty", cfg.StoragePath)
	}
	if cfg.SearchURL != "http://127.0.0.1:8000" {
		t.Errorf("SearchURL = %q", cfg.SearchURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CURSOR_ARCHIVE_PORT", "9000")
	t.Setenv("CURSOR_ARCHIVE_STORAGE", "/custom/cursor")
	t.Setenv("CURSOR_ARCHIVE_SEARCH_URL", "http://search:8000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.StoragePath != "/custom/cursor" {
		t.Errorf("StoragePath = %q", cfg.StoragePath)
	}
	if cfg.SearchURL != "http://search:8000" {
		t.Errorf("SearchURL = %q", cfg.SearchURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("CURSOR_ARCHIVE_PORT", "not-a-number")

	cfg := Load()
	if cfg.Port != 8260 {
		t.Errorf("Port = %d, want fallback 8260", cfg.Port)
	}
}
