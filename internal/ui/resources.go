package ui

import (
	"os"

	"fyne.io/fyne/v2"
)

// AppIcon is the icon file looked up next to the binary
const AppIcon = "fastmedia.png"

// AppIconEnv overrides where the icon is read from
const AppIconEnv = "FASTMEDIA_ICON"

// LoadLogoResource loads the window icon from disk
func LoadLogoResource() (fyne.Resource, error) {
	path := AppIcon
	if p := os.Getenv(AppIconEnv); p != "" {
		path = p
	}
	return fyne.LoadResourceFromPath(path)
}
