package config

import (
	"testing"
	"time"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"FASTMEDIA_SERVER_URL", "FASTMEDIA_DOWNLOAD_DIR", "FASTMEDIA_LANG",
		"FASTMEDIA_BATCH_DELAY", "FASTMEDIA_HTTP_TIMEOUT",
		"FASTMEDIA_LOG_LEVEL", "FASTMEDIA_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	env := LoadEnv()

	if env.ServerURL != "" || env.DownloadDir != "" || env.BatchDelay != 0 || env.HTTPTimeout != 0 {
		t.Errorf("Expected unset overrides, got %+v", env)
	}
	if env.Log.Level != "info" || env.Log.Format != "text" {
		t.Errorf("Expected info/text logging, got %+v", env.Log)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("FASTMEDIA_SERVER_URL", "http://media.local:5000/")
	t.Setenv("FASTMEDIA_BATCH_DELAY", "750ms")
	t.Setenv("FASTMEDIA_HTTP_TIMEOUT", "2m")
	t.Setenv("FASTMEDIA_LOG_FORMAT", "json")

	env := LoadEnv()

	if env.ServerURL != "http://media.local:5000" {
		t.Errorf("Expected trimmed server URL, got %s", env.ServerURL)
	}
	if env.BatchDelay != 750*time.Millisecond {
		t.Errorf("Expected 750ms, got %v", env.BatchDelay)
	}
	if env.HTTPTimeout != 2*time.Minute {
		t.Errorf("Expected 2m, got %v", env.HTTPTimeout)
	}
	if env.Log.Format != "json" {
		t.Errorf("Expected json log format, got %s", env.Log.Format)
	}
}

func TestLoadEnv_InvalidDuration(t *testing.T) {
	t.Setenv("FASTMEDIA_BATCH_DELAY", "soon")

	if env := LoadEnv(); env.BatchDelay != 0 {
		t.Errorf("Expected invalid duration to be ignored, got %v", env.BatchDelay)
	}
}
