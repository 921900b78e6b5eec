package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, got)
	}

	settings.SetServerURL(" http://media.local:8000/ ")
	if got := settings.GetServerURL(); got != "http://media.local:8000" {
		t.Errorf("Expected trimmed server URL, got %s", got)
	}

	settings.SetServerURL("")
	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Empty server URL should fall back to %s, got %s", DefaultServerURL, got)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	if got := settings.GetDownloadDirectory(); got != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, got)
	}
}

func TestBatchDelay(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetBatchDelay(); got != DefaultBatchDelay {
		t.Errorf("Expected default batch delay %v, got %v", DefaultBatchDelay, got)
	}

	settings.SetBatchDelay(2 * time.Second)
	if got := settings.GetBatchDelay(); got != 2*time.Second {
		t.Errorf("Expected batch delay 2s, got %v", got)
	}

	// Test boundary values
	settings.SetBatchDelay(time.Millisecond)
	if settings.GetBatchDelay() != MinBatchDelay {
		t.Errorf("Batch delay should be clamped to minimum %v", MinBatchDelay)
	}

	settings.SetBatchDelay(time.Minute)
	if settings.GetBatchDelay() != MaxBatchDelay {
		t.Errorf("Batch delay should be clamped to maximum %v", MaxBatchDelay)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("zh")
	if lang := settings.GetLanguage(); lang != "zh" {
		t.Errorf("Expected language 'zh', got %s", lang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Expected default auto-reveal setting")
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be enabled")
	}
}

func TestOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetServerURL("http://stored:5000")
	settings.SetDownloadDirectory("/stored")
	settings.SetLanguage("en")

	settings.SetOverrides(Env{
		ServerURL:   "http://env:5000",
		DownloadDir: "/env",
		Language:    "zh",
		BatchDelay:  time.Second,
	})

	if settings.GetServerURL() != "http://env:5000" {
		t.Errorf("Expected env server URL, got %s", settings.GetServerURL())
	}
	if settings.GetDownloadDirectory() != "/env" {
		t.Errorf("Expected env download dir, got %s", settings.GetDownloadDirectory())
	}
	if settings.GetLanguage() != "zh" {
		t.Errorf("Expected env language, got %s", settings.GetLanguage())
	}
	if settings.GetBatchDelay() != time.Second {
		t.Errorf("Expected env batch delay, got %v", settings.GetBatchDelay())
	}

	if app.Preferences().String(KeyServerURL) != "http://stored:5000" {
		t.Error("Overrides must not be written back to preferences")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "zh"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
