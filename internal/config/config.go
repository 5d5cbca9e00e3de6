package config

import (
	"os"
	"strconv"
)

// Config holds runtime configuration for the HTTP server and the
// semantic search proxy, loaded from the environment.
type Config struct {
	Port        int
	StoragePath string // empty means auto-detect
	SearchURL   string
	LogLevel    string
}

// Load reads configuration from the environment with sane defaults.
func Load() Config {
	return Config{
		Port:        envInt("CURSOR_ARCHIVE_PORT", 8260),
		StoragePath: envStr("CURSOR_ARCHIVE_STORAGE", ""),
		SearchURL:   envStr("CURSOR_ARCHIVE_SEARCH_URL", "http://127.0.0.1:8000"),
		LogLevel:    envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
