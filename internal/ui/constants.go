package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconCopy     = "📋"
	IconClose    = "×"
	IconUpload   = "⬆"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DetailSeparator    = ": "
	IndexFormat        = "#%d"
	CountFormat        = "%s (%d)"
)

// Layout sizing
const (
	WindowWidth  float32 = 760
	WindowHeight float32 = 720

	URLEntryMinRows = 4
	TextBlockRows   = 6

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 420
	BatchDialogWidth     float32 = 420
	BatchDialogHeight    float32 = 320
)

// Alert behavior
const (
	AlertAutoHide = 5 * time.Second
)
