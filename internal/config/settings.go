package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/fastmedia/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL          = "server_url"
	KeyDownloadDir        = "download_directory"
	KeyBatchDelayMs       = "batch_delay_ms"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultServerURL          = "http://127.0.0.1:5000"
	DefaultBatchDelay         = 500 * time.Millisecond
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	DefaultFallbackDir        = "/tmp/downloads"

	MinBatchDelay = 100 * time.Millisecond
	MaxBatchDelay = 10 * time.Second
)

// Settings manages application configuration. Environment overrides, when
// set, win over stored preferences without being written back.
type Settings struct {
	app       fyne.App
	overrides Env
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// SetOverrides applies environment overrides for this run
func (s *Settings) SetOverrides(env Env) {
	s.overrides = env
}

// GetServerURL returns the processing server root
func (s *Settings) GetServerURL() string {
	if s.overrides.ServerURL != "" {
		return s.overrides.ServerURL
	}
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the processing server root
func (s *Settings) SetServerURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	if s.overrides.DownloadDir != "" {
		return s.overrides.DownloadDir
	}
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = DefaultFallbackDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetBatchDelay returns the pause between batch saves
func (s *Settings) GetBatchDelay() time.Duration {
	if s.overrides.BatchDelay > 0 {
		return clampDelay(s.overrides.BatchDelay)
	}
	ms := s.app.Preferences().Int(KeyBatchDelayMs)
	if ms <= 0 {
		return DefaultBatchDelay
	}
	return clampDelay(time.Duration(ms) * time.Millisecond)
}

// SetBatchDelay sets the pause between batch saves
func (s *Settings) SetBatchDelay(delay time.Duration) {
	s.app.Preferences().SetInt(KeyBatchDelayMs, int(clampDelay(delay).Milliseconds()))
}

func clampDelay(d time.Duration) time.Duration {
	if d < MinBatchDelay {
		return MinBatchDelay
	}
	if d > MaxBatchDelay {
		return MaxBatchDelay
	}
	return d
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	if s.overrides.Language != "" {
		return s.overrides.Language
	}
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal saved files in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal saved files in the file manager
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
	}
}
