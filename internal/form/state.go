package form

import (
	"strings"

	"github.com/ytget/fastmedia/internal/model"
)

// Section is an optional group of inputs tied to an operation
type Section string

const (
	SectionNone      Section = ""
	SectionTimestamp Section = "timestamp"
	SectionWatermark Section = "watermark"
)

// State is everything the user has entered. Handlers take a State and
// return the updated copy.
type State struct {
	Feature        model.OperationKind // zero value means none selected
	URLs           string
	Timestamp      string // raw text, parsed leniently on submit
	WatermarkText  string
	WatermarkImage string // server path of the uploaded image
}

// SelectFeature makes kind the single active operation
func (s State) SelectFeature(kind model.OperationKind) State {
	if !kind.Valid() {
		kind = ""
	}
	s.Feature = kind
	return s
}

// ResetWatermarkImage forgets the uploaded watermark image
func (s State) ResetWatermarkImage() State {
	s.WatermarkImage = ""
	return s
}

// HasFeature reports whether an operation is selected
func (s State) HasFeature() bool {
	return s.Feature.Valid()
}

// HasURLs reports whether the URL input holds anything besides whitespace
func (s State) HasURLs() bool {
	return strings.TrimSpace(s.URLs) != ""
}

// SectionFor returns the optional input section shown for kind
func SectionFor(kind model.OperationKind) Section {
	switch kind {
	case model.OperationThumbnail:
		return SectionTimestamp
	case model.OperationWatermark:
		return SectionWatermark
	default:
		return SectionNone
	}
}

// SplitURLs splits raw input on commas and newlines, dropping empty entries
func SplitURLs(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	urls := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
