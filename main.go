package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/fastmedia/internal/config"
	"github.com/ytget/fastmedia/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.fastmedia"
	AppName = "FastMedia"
)

func main() {
	env := config.LoadEnv()
	logger := config.NewLogger(env.Log, os.Stderr)
	slog.SetDefault(logger)

	logger.Info("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		logger.Debug("app icon not loaded", "error", err)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	settings.SetOverrides(env)

	ui.NewRootUI(myWindow, myApp, settings, logger, env.HTTPTimeout)

	myWindow.ShowAndRun()
}
