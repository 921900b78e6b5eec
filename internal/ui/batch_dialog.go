package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/fastmedia/internal/batch"
	"github.com/ytget/fastmedia/internal/i18n"
	"github.com/ytget/fastmedia/internal/model"
)

// ShowBatchDialog asks before saving every item of a batch. onConfirm runs
// only when the user accepts.
func ShowBatchDialog(window fyne.Window, localization *i18n.Localization, items []model.ResultRecord, onConfirm func()) {
	confirmation := batch.Confirm(items)

	list := widget.NewLabel(strings.Join(confirmation.Lines, "\n"))
	list.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(
		widget.NewLabel(localization.GetText(batch.KeyBatchConfirm)),
		nil, nil, nil,
		container.NewVScroll(list),
	)

	d := dialog.NewCustomConfirm(
		fmt.Sprintf(CountFormat, localization.GetText(i18n.KeyBatchTitle), confirmation.Count),
		localization.GetText(i18n.KeySaveAll),
		localization.GetText(i18n.KeyCancel),
		content,
		func(confirmed bool) {
			if confirmed && onConfirm != nil {
				onConfirm()
			}
		},
		window,
	)
	d.Resize(fyne.NewSize(BatchDialogWidth, BatchDialogHeight))
	d.Show()
}
