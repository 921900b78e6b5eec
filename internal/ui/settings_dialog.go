package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/fastmedia/internal/config"
	"github.com/ytget/fastmedia/internal/i18n"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *i18n.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry   *widget.Entry
	downloadDirEntry *widget.Entry
	batchDelayEntry  *widget.Entry
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check

	languageCodes  []string
	languageLabels map[string]string
}

// ShowSettingsDialog builds the settings dialog and shows it.
// onSaved runs after the new values are persisted.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *i18n.Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *i18n.Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(IconFolder+" "+loc.GetText(i18n.KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.batchDelayEntry = widget.NewEntry()
	sd.batchDelayEntry.SetPlaceHolder(strconv.FormatInt(config.DefaultBatchDelay.Milliseconds(), 10))

	// Language options are shown by label and stored by code
	sd.languageLabels = sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(sd.languageLabels))
	for code := range sd.languageLabels {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)
	options := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		options = append(options, sd.languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	sd.autoRevealCheck = widget.NewCheck(loc.GetText(i18n.KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(i18n.KeyServerURL)),
		sd.serverURLEntry,

		widget.NewLabel(loc.GetText(i18n.KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewLabel(loc.GetText(i18n.KeyBatchDelay)),
		sd.batchDelayEntry,

		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(i18n.KeyLanguage)),
		sd.languageSelect,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(i18n.KeySettings),
		loc.GetText(i18n.KeySave),
		loc.GetText(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.batchDelayEntry.SetText(strconv.FormatInt(sd.settings.GetBatchDelay().Milliseconds(), 10))
	if label, ok := sd.languageLabels[sd.settings.GetLanguage()]; ok {
		sd.languageSelect.SetSelected(label)
	}
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the entered values to settings, skipping blank or invalid ones
func (sd *SettingsDialog) apply() {
	if serverURL := strings.TrimSpace(sd.serverURLEntry.Text); serverURL != "" {
		sd.settings.SetServerURL(serverURL)
	}

	if downloadDir := strings.TrimSpace(sd.downloadDirEntry.Text); downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.batchDelayEntry.Text)); err == nil {
		sd.settings.SetBatchDelay(time.Duration(ms) * time.Millisecond)
	}

	for _, code := range sd.languageCodes {
		if sd.languageLabels[code] == sd.languageSelect.Selected {
			sd.settings.SetLanguage(code)
			break
		}
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)
}
