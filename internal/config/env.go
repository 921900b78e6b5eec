package config

import (
	"os"
	"strings"
	"time"
)

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// Env holds FASTMEDIA_* overrides. Empty or zero fields are unset.
type Env struct {
	ServerURL   string
	DownloadDir string
	Language    string
	BatchDelay  time.Duration
	HTTPTimeout time.Duration // zero means no client timeout
	Log         LogConfig
}

// LoadEnv reads overrides from the environment.
func LoadEnv() Env {
	return Env{
		ServerURL:   strings.TrimRight(envOr("FASTMEDIA_SERVER_URL", ""), "/"),
		DownloadDir: envOr("FASTMEDIA_DOWNLOAD_DIR", ""),
		Language:    envOr("FASTMEDIA_LANG", ""),
		BatchDelay:  envDurationOr("FASTMEDIA_BATCH_DELAY", 0),
		HTTPTimeout: envDurationOr("FASTMEDIA_HTTP_TIMEOUT", 0),
		Log: LogConfig{
			Level:  envOr("FASTMEDIA_LOG_LEVEL", "info"),
			Format: envOr("FASTMEDIA_LOG_FORMAT", "text"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
