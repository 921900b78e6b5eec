package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/fastmedia/internal/i18n"
	"github.com/ytget/fastmedia/internal/view"
)

// ResultRow draws one row of the result view tree
type ResultRow struct {
	widget.BaseWidget

	row          view.Row
	localization *i18n.Localization

	// UI components
	statusLabel *widget.Label
	indexLabel  *widget.Label
	urlLabel    *widget.Label
	detailsBox  *fyne.Container
	errorLabel  *widget.Label
	textLabel   *widget.Label
	toggleBtn   *widget.Button
	copyBtn     *widget.Button
	textBox     *fyne.Container
	actionBox   *fyne.Container

	// Callbacks
	onAction func(rowID string, action view.Action)
	onToggle func(rowID string)
	onCopy   func(text string)
}

// NewResultRow creates a new result row widget
func NewResultRow(row view.Row, localization *i18n.Localization) *ResultRow {
	rr := &ResultRow{
		row:          row,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromRow()
	return rr
}

// SetCallbacks sets the action callbacks
func (rr *ResultRow) SetCallbacks(
	onAction func(rowID string, action view.Action),
	onToggle func(rowID string),
	onCopy func(text string),
) {
	rr.onAction = onAction
	rr.onToggle = onToggle
	rr.onCopy = onCopy
}

// UpdateRow redraws the widget for row
func (rr *ResultRow) UpdateRow(row view.Row) {
	rr.row = row
	rr.updateFromRow()
	rr.Refresh()
}

// Row returns the row currently drawn
func (rr *ResultRow) Row() view.Row {
	return rr.row
}

// createUI creates the UI components
func (rr *ResultRow) createUI() {
	rr.statusLabel = widget.NewLabel("")
	rr.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	rr.indexLabel = widget.NewLabel("")
	rr.indexLabel.TextStyle = fyne.TextStyle{Monospace: true}

	rr.urlLabel = widget.NewLabel("")
	rr.urlLabel.Truncation = fyne.TextTruncateEllipsis

	rr.detailsBox = container.NewVBox()

	rr.errorLabel = widget.NewLabel("")
	rr.errorLabel.Importance = widget.DangerImportance
	rr.errorLabel.Wrapping = fyne.TextWrapWord

	rr.textLabel = widget.NewLabel("")
	rr.textLabel.Wrapping = fyne.TextWrapWord
	rr.toggleBtn = widget.NewButton("", func() {
		if rr.onToggle != nil {
			rr.onToggle(rr.row.ID)
		}
	})
	rr.toggleBtn.Importance = widget.LowImportance
	rr.copyBtn = widget.NewButton(IconCopy, func() {
		if rr.onCopy != nil && rr.row.Text != nil {
			rr.onCopy(rr.row.Text.Full)
		}
	})
	rr.copyBtn.Importance = widget.LowImportance
	rr.textBox = container.NewVBox(rr.textLabel, container.NewHBox(rr.toggleBtn, rr.copyBtn))

	rr.actionBox = container.NewHBox()
}

// updateFromRow updates UI components based on the current row
func (rr *ResultRow) updateFromRow() {
	row := rr.row
	loc := rr.localization

	rr.indexLabel.SetText(fmt.Sprintf(IndexFormat, row.Index))
	rr.statusLabel.SetText(row.Marker + " " + loc.GetText(row.StatusKey))
	if row.Success {
		rr.statusLabel.Importance = widget.SuccessImportance
	} else {
		rr.statusLabel.Importance = widget.DangerImportance
	}

	if row.URLPlaceholder {
		rr.urlLabel.SetText(loc.GetText(i18n.KeyLocalSource))
		rr.urlLabel.TextStyle = fyne.TextStyle{Italic: true}
	} else {
		rr.urlLabel.SetText(row.URL)
		rr.urlLabel.TextStyle = fyne.TextStyle{}
	}

	rr.detailsBox.Objects = nil
	for _, d := range row.Details {
		label := widget.NewLabel(loc.GetText(d.LabelKey) + DetailSeparator + d.Value)
		label.Truncation = fyne.TextTruncateEllipsis
		rr.detailsBox.Add(label)
	}

	if row.Success {
		rr.errorLabel.Hide()
	} else {
		text := row.Error
		if text == view.UnknownError {
			text = loc.GetText(view.KeyUnknownError)
		}
		rr.errorLabel.SetText(text)
		rr.errorLabel.Show()
	}

	if row.Text != nil {
		rr.textLabel.SetText(row.Text.Visible())
		if row.Text.Truncated() {
			if row.Text.Expanded {
				rr.toggleBtn.SetText(loc.GetText(i18n.KeyShowLess))
			} else {
				rr.toggleBtn.SetText(loc.GetText(i18n.KeyShowMore))
			}
			rr.toggleBtn.Show()
		} else {
			rr.toggleBtn.Hide()
		}
		rr.textBox.Show()
	} else {
		rr.textBox.Hide()
	}

	rr.actionBox.Objects = nil
	for _, action := range row.Actions {
		rr.actionBox.Add(rr.actionButton(action))
	}
}

func (rr *ResultRow) actionButton(action view.Action) *widget.Button {
	var label string
	importance := widget.MediumImportance
	switch action {
	case view.ActionDownload:
		label = rr.localization.GetText(i18n.KeyDownload)
		importance = widget.HighImportance
	case view.ActionCleanup:
		label = rr.localization.GetText(i18n.KeyCleanup)
		importance = widget.WarningImportance
	case view.ActionLegacyDownload:
		label = rr.localization.GetText(i18n.KeyOpenInBrowser)
		importance = widget.LowImportance
	default:
		label = string(action)
	}

	btn := widget.NewButton(label, func() {
		if rr.onAction != nil {
			rr.onAction(rr.row.ID, action)
		}
	})
	btn.Importance = importance
	return btn
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, container.NewHBox(rr.indexLabel, rr.statusLabel), rr.actionBox, rr.urlLabel)
	body := container.NewVBox(
		header,
		rr.detailsBox,
		rr.errorLabel,
		rr.textBox,
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(body)
}
