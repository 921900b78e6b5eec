package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/fastmedia/internal/api"
	"github.com/ytget/fastmedia/internal/batch"
	"github.com/ytget/fastmedia/internal/config"
	"github.com/ytget/fastmedia/internal/download"
	"github.com/ytget/fastmedia/internal/form"
	"github.com/ytget/fastmedia/internal/i18n"
	"github.com/ytget/fastmedia/internal/loading"
	"github.com/ytget/fastmedia/internal/model"
	"github.com/ytget/fastmedia/internal/platform"
	"github.com/ytget/fastmedia/internal/view"
)

// Toast notification constants
const (
	RootToastWidth  = 300
	RootToastHeight = 120
	RootToastMargin = 20
)

// watermarkExtensions filters the watermark image picker
var watermarkExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *i18n.Localization
	logger       *slog.Logger
	httpTimeout  time.Duration

	// Cancelled when the window closes
	ctx    context.Context
	cancel context.CancelFunc

	// Services, rebuilt when settings change
	servicesMu sync.RWMutex
	client     *api.Client
	saver      download.Saver
	controller *form.Controller
	indicator  *loading.Indicator

	// Touched only on the UI goroutine
	state   form.State
	results view.Results

	// Form widgets
	featureLabel   *widget.Label
	featureButtons map[model.OperationKind]*widget.Button
	urlLabel       *widget.Label
	urlEntry       *widget.Entry
	submitBtn      *widget.Button

	timestampSection *fyne.Container
	timestampLabel   *widget.Label
	timestampEntry   *widget.Entry

	watermarkSection    *fyne.Container
	watermarkTextLabel  *widget.Label
	watermarkTextEntry  *widget.Entry
	watermarkImageLabel *widget.Label
	watermarkImageValue *widget.Label
	uploadBtn           *widget.Button
	resetImageBtn       *widget.Button

	// Feedback widgets
	alertLabel     *widget.Label
	alertContainer *fyne.Container
	alertGen       uint64
	progressBar    *widget.ProgressBar

	// Results widgets
	resultsLabel *widget.Label
	resultsBox   *fyne.Container
	batchBtn     *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, logger *slog.Logger, httpTimeout time.Duration) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	localization := i18n.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())
	ui := &RootUI{
		ctx:            ctx,
		cancel:         cancel,
		window:         window,
		app:            app,
		settings:       settings,
		localization:   localization,
		logger:         logger,
		httpTimeout:    httpTimeout,
		featureButtons: make(map[model.OperationKind]*widget.Button),
	}

	ui.indicator = loading.New(loading.Config{})
	ui.indicator.SetUpdateCallback(ui.onLoadingUpdate)

	window.SetTitle(localization.GetText(i18n.KeyAppTitle))
	window.SetOnClosed(cancel)

	ui.setupUI()
	ui.wireServices()

	logger.Info("ui initialized",
		"server", settings.GetServerURL(),
		"language", localization.GetCurrentLanguage(),
	)
	return ui
}

// wireServices (re)creates the API client and everything built on it from
// the current settings
func (ui *RootUI) wireServices() {
	downloadsDir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		ui.logger.Warn("cannot create download directory", "dir", downloadsDir, "error", err)
	}

	client := api.NewClient(api.Config{
		BaseURL: ui.settings.GetServerURL(),
		Timeout: ui.httpTimeout,
		Logger:  ui.logger,
	})
	saver := download.NewService(client, downloadsDir, ui.logger)
	saver.SetUpdateCallback(ui.onSaveTaskUpdate)

	ui.servicesMu.Lock()
	ui.client = client
	ui.saver = saver
	ui.controller = form.NewController(client, ui.indicator, ui, ui.logger)
	ui.servicesMu.Unlock()
}

func (ui *RootUI) services() (*api.Client, download.Saver, *form.Controller) {
	ui.servicesMu.RLock()
	defer ui.servicesMu.RUnlock()
	return ui.client, ui.saver, ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Feature cards
	ui.featureLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyFeatures))
	ui.featureLabel.TextStyle = fyne.TextStyle{Bold: true}
	featureRow := container.NewGridWithColumns(len(model.AllOperationKinds()))
	for _, kind := range model.AllOperationKinds() {
		k := kind // Capture for closure
		btn := widget.NewButton(ui.localization.GetText(i18n.FeatureKey(k.String())), func() {
			ui.onFeatureSelected(k)
		})
		ui.featureButtons[k] = btn
		featureRow.Add(btn)
	}

	// URL input
	ui.urlLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyURLs))
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.Wrapping = fyne.TextWrapWord
	ui.urlEntry.SetMinRowsVisible(URLEntryMinRows)
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(i18n.KeyURLPlaceholder))
	ui.urlEntry.OnChanged = ui.onURLsChanged

	// Thumbnail timestamp
	ui.timestampLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyTimestamp))
	ui.timestampEntry = widget.NewEntry()
	ui.timestampEntry.SetPlaceHolder(ui.localization.GetText(i18n.KeyTimestampHint))
	ui.timestampEntry.OnChanged = func(text string) {
		ui.state.Timestamp = text
	}
	ui.timestampSection = container.NewVBox(ui.timestampLabel, ui.timestampEntry)

	// Watermark inputs
	ui.watermarkTextLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyWatermarkText))
	ui.watermarkTextEntry = widget.NewEntry()
	ui.watermarkTextEntry.SetPlaceHolder(ui.localization.GetText(i18n.KeyWatermarkTextHint))
	ui.watermarkTextEntry.OnChanged = func(text string) {
		ui.state.WatermarkText = text
	}
	ui.watermarkImageLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyWatermarkImage))
	ui.watermarkImageValue = widget.NewLabel(ui.localization.GetText(i18n.KeyNoImage))
	ui.watermarkImageValue.Truncation = fyne.TextTruncateEllipsis
	ui.uploadBtn = widget.NewButton(IconUpload+" "+ui.localization.GetText(i18n.KeyUploadImage), ui.onUploadImage)
	ui.resetImageBtn = widget.NewButton(ui.localization.GetText(i18n.KeyResetImage), ui.onResetImage)
	ui.resetImageBtn.Importance = widget.LowImportance
	ui.watermarkSection = container.NewVBox(
		ui.watermarkTextLabel,
		ui.watermarkTextEntry,
		ui.watermarkImageLabel,
		container.NewBorder(nil, nil, nil, container.NewHBox(ui.uploadBtn, ui.resetImageBtn), ui.watermarkImageValue),
	)

	// Submit
	ui.submitBtn = widget.NewButton("", ui.onSubmit)
	ui.submitBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Alert panel under the form (hidden by default)
	ui.alertLabel = widget.NewLabel("")
	ui.alertLabel.Wrapping = fyne.TextWrapWord
	closeAlertBtn := widget.NewButton(IconClose, ui.hideAlert)
	closeAlertBtn.Importance = widget.LowImportance
	ui.alertContainer = container.NewBorder(nil, nil, nil, closeAlertBtn, ui.alertLabel)
	ui.alertContainer.Hide()

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = loading.Complete
	ui.progressBar.Hide()

	// Results
	ui.resultsLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyResults))
	ui.resultsLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.resultsLabel.Hide()
	ui.batchBtn = widget.NewButton("", ui.onBatchSave)
	ui.batchBtn.Importance = widget.HighImportance
	ui.batchBtn.Hide()
	ui.resultsBox = container.NewVBox()

	formPanel := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.featureLabel),
		featureRow,
		ui.urlLabel,
		ui.urlEntry,
		ui.timestampSection,
		ui.watermarkSection,
		ui.submitBtn,
		ui.progressBar,
		ui.alertContainer,
		container.NewBorder(nil, nil, nil, ui.batchBtn, ui.resultsLabel),
	)

	content := container.NewBorder(
		formPanel,                          // top
		nil,                                // bottom
		nil,                                // left
		nil,                                // right
		container.NewVScroll(ui.resultsBox), // center
	)

	ui.updateFeatureButtons()
	ui.updateSections()
	ui.updateWatermarkImage()
	ui.updateSubmitButton()

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(i18n.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization
	ui.window.SetTitle(loc.GetText(i18n.KeyAppTitle))

	ui.featureLabel.SetText(loc.GetText(i18n.KeyFeatures))
	for kind, btn := range ui.featureButtons {
		btn.SetText(loc.GetText(i18n.FeatureKey(kind.String())))
	}
	ui.updateURLLabel()
	ui.urlEntry.SetPlaceHolder(loc.GetText(i18n.KeyURLPlaceholder))
	ui.timestampLabel.SetText(loc.GetText(i18n.KeyTimestamp))
	ui.watermarkTextLabel.SetText(loc.GetText(i18n.KeyWatermarkText))
	ui.watermarkTextEntry.SetPlaceHolder(loc.GetText(i18n.KeyWatermarkTextHint))
	ui.watermarkImageLabel.SetText(loc.GetText(i18n.KeyWatermarkImage))
	ui.uploadBtn.SetText(IconUpload + " " + loc.GetText(i18n.KeyUploadImage))
	ui.resetImageBtn.SetText(loc.GetText(i18n.KeyResetImage))
	ui.resultsLabel.SetText(loc.GetText(i18n.KeyResults))

	ui.updateWatermarkImage()
	ui.updateSubmitButton()
	ui.renderResults()
}

// onFeatureSelected makes kind the active feature
func (ui *RootUI) onFeatureSelected(kind model.OperationKind) {
	ui.state = ui.state.SelectFeature(kind)
	ui.logger.Debug("feature selected", "operation", kind)
	ui.hideAlert()
	ui.setResults(view.Results{})
	ui.updateFeatureButtons()
	ui.updateSections()
	ui.updateSubmitButton()
}

// onURLsChanged keeps the state in step with the URL input
func (ui *RootUI) onURLsChanged(text string) {
	ui.state.URLs = text
	ui.updateURLLabel()
	ui.updateSubmitButton()
}

// updateURLLabel shows how many URLs the server will receive
func (ui *RootUI) updateURLLabel() {
	label := ui.localization.GetText(i18n.KeyURLs)
	if n := len(form.SplitURLs(ui.state.URLs)); n > 0 {
		label = fmt.Sprintf(CountFormat, label, n)
	}
	ui.urlLabel.SetText(label)
}

func (ui *RootUI) updateFeatureButtons() {
	for kind, btn := range ui.featureButtons {
		if kind == ui.state.Feature {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// updateSections shows the input section of the active feature
func (ui *RootUI) updateSections() {
	switch form.SectionFor(ui.state.Feature) {
	case form.SectionTimestamp:
		ui.timestampSection.Show()
		ui.watermarkSection.Hide()
	case form.SectionWatermark:
		ui.timestampSection.Hide()
		ui.watermarkSection.Show()
	default:
		ui.timestampSection.Hide()
		ui.watermarkSection.Hide()
	}
}

func (ui *RootUI) updateSubmitButton() {
	state := form.Button(ui.state)
	ui.submitBtn.SetText(ui.localization.GetText(state.Label))
	if state.Enabled {
		ui.submitBtn.Enable()
	} else {
		ui.submitBtn.Disable()
	}
}

func (ui *RootUI) updateWatermarkImage() {
	if ui.state.WatermarkImage == "" {
		ui.watermarkImageValue.SetText(ui.localization.GetText(i18n.KeyNoImage))
		ui.resetImageBtn.Disable()
		return
	}
	ui.watermarkImageValue.SetText(model.FileName(ui.state.WatermarkImage))
	ui.resetImageBtn.Enable()
}

// onSubmit runs the current form in the background
func (ui *RootUI) onSubmit() {
	state := ui.state
	go func() {
		if _, err := ui.process(state); err != nil {
			ui.logger.Debug("submit finished with error", "error", err)
		}
	}()
}

// process runs one submit to completion
func (ui *RootUI) process(state form.State) (view.Results, error) {
	_, saver, controller := ui.services()
	if removed := saver.ClearFinished(); removed > 0 {
		ui.logger.Debug("forgot finished saves",
			"removed", removed,
			"running", len(saver.GetAllTasks()),
		)
	}
	return controller.Process(ui.ctx, state)
}

// onUploadImage lets the user pick a watermark image and uploads it
func (ui *RootUI) onUploadImage() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showAlert(view.Error(form.KeyUploadFailed, err.Error()))
			return
		}
		if reader == nil {
			return
		}
		go func() {
			defer reader.Close()
			ui.uploadWatermark(reader.URI().Name(), reader)
		}()
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(watermarkExtensions))
	fileDialog.Show()
}

// uploadWatermark sends the image and records its server path on success
func (ui *RootUI) uploadWatermark(name string, r io.Reader) {
	_, _, controller := ui.services()
	updated, err := controller.UploadWatermark(ui.ctx, form.State{}, name, r)
	if err != nil {
		return
	}
	fyne.Do(func() {
		ui.state.WatermarkImage = updated.WatermarkImage
		ui.updateWatermarkImage()
	})
}

// onResetImage forgets the uploaded watermark image
func (ui *RootUI) onResetImage() {
	ui.state = ui.state.ResetWatermarkImage()
	ui.updateWatermarkImage()
	ui.showAlert(view.Info(form.KeyWatermarkImageReset, ""))
}

// ShowAlert shows a message panel that hides itself after AlertAutoHide
func (ui *RootUI) ShowAlert(a view.Alert) {
	fyne.Do(func() { ui.showAlert(a) })
}

// HideAlert hides the message panel
func (ui *RootUI) HideAlert() {
	fyne.Do(ui.hideAlert)
}

// ShowResults replaces the result list
func (ui *RootUI) ShowResults(results view.Results) {
	fyne.Do(func() { ui.setResults(results) })
}

// ClearResults empties the result list
func (ui *RootUI) ClearResults() {
	fyne.Do(func() { ui.setResults(view.Results{}) })
}

func (ui *RootUI) showAlert(a view.Alert) {
	ui.alertGen++
	gen := ui.alertGen

	ui.alertLabel.SetText(ui.localization.AlertText(a))
	switch a.Level {
	case view.LevelSuccess:
		ui.alertLabel.Importance = widget.SuccessImportance
	case view.LevelError:
		ui.alertLabel.Importance = widget.DangerImportance
	default:
		ui.alertLabel.Importance = widget.MediumImportance
	}
	ui.alertLabel.Refresh()
	ui.alertContainer.Show()

	time.AfterFunc(AlertAutoHide, func() {
		fyne.Do(func() {
			if ui.alertGen == gen {
				ui.alertContainer.Hide()
			}
		})
	})
}

func (ui *RootUI) hideAlert() {
	ui.alertGen++
	ui.alertContainer.Hide()
}

func (ui *RootUI) setResults(results view.Results) {
	ui.results = results
	ui.renderResults()
}

// renderResults rebuilds the result list from ui.results
func (ui *RootUI) renderResults() {
	ui.resultsBox.Objects = nil

	if ui.results.Empty() {
		ui.resultsLabel.Hide()
		ui.batchBtn.Hide()
		ui.resultsBox.Refresh()
		return
	}

	for _, row := range ui.results.Rows {
		rr := NewResultRow(row, ui.localization)
		rr.SetCallbacks(ui.onRowAction, ui.onToggleText, ui.onCopyText)
		ui.resultsBox.Add(rr)
	}
	ui.resultsLabel.Show()

	if b := ui.results.Batch; b != nil {
		ui.batchBtn.SetText(fmt.Sprintf(CountFormat, ui.localization.GetText(i18n.KeySaveAll), b.Count))
		ui.batchBtn.Show()
	} else {
		ui.batchBtn.Hide()
	}
	ui.resultsBox.Refresh()
}

// onRowAction dispatches a row button
func (ui *RootUI) onRowAction(rowID string, action view.Action) {
	row, ok := ui.results.Row(rowID)
	if !ok {
		ui.logger.Warn("action for unknown row", "row", rowID, "action", action)
		return
	}
	kind := ui.results.Kind

	switch action {
	case view.ActionDownload:
		go ui.saveRecord(row.Record, kind)
	case view.ActionCleanup:
		go ui.cleanupRecord(rowID, row.Record, kind)
	case view.ActionLegacyDownload:
		ui.openLegacyDownload(row.Record)
	default:
		ui.logger.Warn("unknown row action", "action", action)
	}
}

// saveRecord downloads one result into the download directory
func (ui *RootUI) saveRecord(rec model.ResultRecord, kind model.OperationKind) {
	_, saver, _ := ui.services()
	ui.ShowAlert(view.Info(i18n.KeyDownloadStarted, rec.DownloadName()))

	path, err := saver.Save(ui.ctx, rec, kind.FileType())
	if err != nil {
		ui.ShowAlert(view.Error(i18n.KeyDownloadFailed, api.Message(err)))
		return
	}

	ui.ShowAlert(view.Success(i18n.KeyDownloadSaved, model.FileName(path)))
	fyne.Do(func() {
		ui.showToastNotification(path)
	})
	if ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealFile(path)
	}
}

// cleanupRecord deletes a temporary result on the server
func (ui *RootUI) cleanupRecord(rowID string, rec model.ResultRecord, kind model.OperationKind) {
	_, saver, _ := ui.services()
	message, err := saver.Cleanup(ui.ctx, rec, kind.FileType())
	if err != nil {
		ui.ShowAlert(view.Error(i18n.KeyCleanupFailed, api.Message(err)))
		return
	}

	ui.ShowAlert(view.Success(i18n.KeyCleanupDone, message))
	fyne.Do(func() {
		ui.setResults(ui.results.WithoutAction(rowID, view.ActionCleanup))
	})
}

// openLegacyDownload opens the permanent file route in the browser
func (ui *RootUI) openLegacyDownload(rec model.ResultRecord) {
	client, _, _ := ui.services()
	link := client.LegacyDownloadURL(rec.FilePath)
	u, err := url.Parse(link)
	if err != nil {
		ui.logger.Error("invalid download link", "url", link, "error", err)
		ui.showAlert(view.Error(i18n.KeyErrorOpeningFile, err.Error()))
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		ui.logger.Error("cannot open browser", "url", link, "error", err)
		ui.showAlert(view.Error(i18n.KeyErrorOpeningFile, err.Error()))
	}
}

func (ui *RootUI) onToggleText(rowID string) {
	ui.setResults(ui.results.ToggleText(rowID))
}

func (ui *RootUI) onCopyText(text string) {
	ui.app.Clipboard().SetContent(text)
	ui.showAlert(view.Success(i18n.KeyTextCopied, ""))
}

// onBatchSave confirms and then saves every downloadable result
func (ui *RootUI) onBatchSave() {
	b := ui.results.Batch
	if b == nil {
		return
	}
	items := append([]model.ResultRecord(nil), b.Items...)
	kind := ui.results.Kind

	ShowBatchDialog(ui.window, ui.localization, items, func() {
		go ui.runBatch(items, kind)
	})
}

// runBatch saves items one by one with the configured pause
func (ui *RootUI) runBatch(items []model.ResultRecord, kind model.OperationKind) batch.Summary {
	_, saver, _ := ui.services()
	downloader := batch.NewDownloader(saver, batch.Config{
		Delay:  ui.settings.GetBatchDelay(),
		Notify: ui.ShowAlert,
		Logger: ui.logger,
	})
	return downloader.Run(ui.ctx, items, kind)
}

// onLoadingUpdate mirrors the loading indicator on the progress bar
func (ui *RootUI) onLoadingUpdate(s loading.Snapshot) {
	fyne.Do(func() {
		ui.progressBar.SetValue(s.Percent)
		if s.Visible {
			ui.progressBar.Show()
		} else {
			ui.progressBar.Hide()
		}
	})
}

// onSaveTaskUpdate logs save progress
func (ui *RootUI) onSaveTaskUpdate(task *model.SaveTask) {
	ui.logger.Debug("save task update",
		"task", task.ID,
		"file", task.GetDisplayTitle(),
		"status", task.Status,
		"bytes", task.Bytes,
	)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies new settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.wireServices()
	ui.refreshUITexts()
	ui.createMenu()
	ui.showAlert(view.Success(i18n.KeySettingsSaved, ""))
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" || strings.HasPrefix(filePath, "http") {
		ui.logger.Warn("cannot reveal path", "path", filePath)
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Error("reveal failed", "path", filePath, "error", err)
		ui.ShowAlert(view.Error(i18n.KeyErrorOpeningFile, err.Error()))
	}
}

// onOpenFile handles opening a saved file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if filePath == "" || strings.HasPrefix(filePath, "http") {
		ui.logger.Warn("cannot open path", "path", filePath)
		return
	}
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Error("open failed", "path", filePath, "error", err)
		ui.ShowAlert(view.Error(i18n.KeyErrorOpeningFile, err.Error()))
	}
}

// showToastNotification shows an in-app toast for a saved file
func (ui *RootUI) showToastNotification(path string) {
	titleLabel := widget.NewLabel(ui.localization.GetText(i18n.KeyDownloadSaved))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(model.FileName(path))
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(ui.localization.GetText(i18n.KeyReveal), func() {
		ui.onRevealFile(path)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(i18n.KeyOpen), func() {
		ui.onOpenFile(path)
	})

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(RootToastWidth, RootToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-RootToastMargin, RootToastMargin))
	toastPopup.Show()

	time.AfterFunc(AlertAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}
