package view

import (
	"github.com/google/uuid"

	"github.com/ytget/fastmedia/internal/model"
)

// Status markers shown at the start of each row
const (
	MarkerSuccess = "✓"
	MarkerFailure = "✗"
)

// Localization keys used by rendered rows
const (
	KeyStatusSuccess = "status_success"
	KeyStatusFailed  = "status_failed"
	KeyUnknownError  = "unknown_error"

	KeyDetailTitle     = "detail_title"
	KeyDetailPlatform  = "detail_platform"
	KeyDetailSize      = "detail_size"
	KeyDetailFile      = "detail_file"
	KeyDetailTimestamp = "detail_timestamp"
	KeyDetailWatermark = "detail_watermark"
)

// UnknownError is shown when a failed record carries no message
const UnknownError = "unknown error"

// TextPreviewRunes is the length of the collapsed text preview
const TextPreviewRunes = 100

// Action is a control attached to a row
type Action string

const (
	ActionDownload       Action = "download"
	ActionCleanup        Action = "cleanup"
	ActionLegacyDownload Action = "legacy_download"
)

// Detail is one labelled line of a successful row
type Detail struct {
	LabelKey string
	Value    string
}

// TextBlock is extracted text, collapsed to Preview until expanded
type TextBlock struct {
	Preview  string
	Full     string
	Expanded bool
}

// Truncated reports whether the preview hides part of the text
func (t *TextBlock) Truncated() bool {
	return t.Preview != t.Full
}

// Visible returns the text the row currently shows
func (t *TextBlock) Visible() string {
	if t.Expanded {
		return t.Full
	}
	return t.Preview
}

// Row is the rendered outcome for one input URL
type Row struct {
	ID             string
	Index          int // 1-based position in the input
	Success        bool
	Marker         string
	StatusKey      string
	URL            string
	URLPlaceholder bool // no URL was reported, e.g. local processing
	Details        []Detail
	Text           *TextBlock
	Error          string
	Actions        []Action
	Record         model.ResultRecord
}

// HasAction reports whether the row currently offers a
func (r *Row) HasAction(a Action) bool {
	for _, existing := range r.Actions {
		if existing == a {
			return true
		}
	}
	return false
}

// Batch groups every downloadable record of a result set
type Batch struct {
	Items []model.ResultRecord
	Count int
}

// Results is the view tree for one submit
type Results struct {
	Kind  model.OperationKind
	Rows  []Row
	Batch *Batch // nil unless more than one row is downloadable
}

// Render builds the view tree for results in input order
func Render(results []model.ResultRecord, kind model.OperationKind) Results {
	out := Results{
		Kind: kind,
		Rows: make([]Row, 0, len(results)),
	}

	var downloadable []model.ResultRecord
	for i, rec := range results {
		row := renderRow(i+1, rec, kind)
		out.Rows = append(out.Rows, row)
		if row.HasAction(ActionDownload) {
			downloadable = append(downloadable, rec)
		}
	}

	if len(downloadable) > 1 {
		out.Batch = &Batch{Items: downloadable, Count: len(downloadable)}
	}
	return out
}

func renderRow(index int, rec model.ResultRecord, kind model.OperationKind) Row {
	row := Row{
		ID:             uuid.NewString(),
		Index:          index,
		Success:        rec.IsSuccess(),
		URL:            rec.URL,
		URLPlaceholder: rec.URL == "",
		Record:         rec,
	}

	if !row.Success {
		row.Marker = MarkerFailure
		row.StatusKey = KeyStatusFailed
		row.Error = rec.Error
		if row.Error == "" {
			row.Error = UnknownError
		}
		return row
	}

	row.Marker = MarkerSuccess
	row.StatusKey = KeyStatusSuccess
	row.Details = details(rec, kind)

	if rec.TextContent != "" {
		row.Text = newTextBlock(rec.TextContent)
	}

	switch {
	case rec.IsTemp():
		row.Actions = []Action{ActionDownload, ActionCleanup}
	case rec.FilePath != "":
		row.Actions = []Action{ActionDownload, ActionLegacyDownload}
	}
	return row
}

func details(rec model.ResultRecord, kind model.OperationKind) []Detail {
	var out []Detail
	if rec.Title != "" {
		out = append(out, Detail{LabelKey: KeyDetailTitle, Value: rec.Title})
	}
	if rec.Platform != "" {
		out = append(out, Detail{LabelKey: KeyDetailPlatform, Value: rec.Platform})
	}
	if rec.FileSize > 0 {
		out = append(out, Detail{LabelKey: KeyDetailSize, Value: model.FormatFileSize(rec.FileSize)})
	}
	if rec.FilePath != "" {
		out = append(out, Detail{LabelKey: KeyDetailFile, Value: model.FileName(rec.FilePath)})
	}
	if kind == model.OperationThumbnail && rec.Timestamp != nil {
		out = append(out, Detail{LabelKey: KeyDetailTimestamp, Value: model.FormatSeconds(*rec.Timestamp)})
	}
	if kind == model.OperationWatermark && rec.WatermarkType != "" {
		out = append(out, Detail{LabelKey: KeyDetailWatermark, Value: rec.WatermarkType})
	}
	return out
}

func newTextBlock(text string) *TextBlock {
	preview := text
	runes := []rune(text)
	if len(runes) > TextPreviewRunes {
		preview = string(runes[:TextPreviewRunes]) + "…"
	}
	return &TextBlock{Preview: preview, Full: text}
}

// Row returns the row with id
func (r Results) Row(id string) (Row, bool) {
	for _, row := range r.Rows {
		if row.ID == id {
			return row, true
		}
	}
	return Row{}, false
}

// Empty reports whether there is nothing to show
func (r Results) Empty() bool {
	return len(r.Rows) == 0
}

// WithoutAction returns a copy of r where row id no longer offers action
func (r Results) WithoutAction(id string, action Action) Results {
	return r.update(id, func(row *Row) {
		kept := make([]Action, 0, len(row.Actions))
		for _, a := range row.Actions {
			if a != action {
				kept = append(kept, a)
			}
		}
		row.Actions = kept
	})
}

// ToggleText returns a copy of r with the text block of row id expanded or collapsed
func (r Results) ToggleText(id string) Results {
	return r.update(id, func(row *Row) {
		if row.Text == nil {
			return
		}
		text := *row.Text
		text.Expanded = !text.Expanded
		row.Text = &text
	})
}

func (r Results) update(id string, fn func(*Row)) Results {
	rows := make([]Row, len(r.Rows))
	copy(rows, r.Rows)
	for i := range rows {
		if rows[i].ID == id {
			fn(&rows[i])
			break
		}
	}
	r.Rows = rows
	return r
}
