package form

import "github.com/ytget/fastmedia/internal/model"

// Submit button label keys
const (
	KeyStartDownload       = "start_download"
	KeyExtractBGM          = "extract_bgm"
	KeyExtractThumbnail    = "extract_thumbnail"
	KeyExtractText         = "extract_text"
	KeyAddWatermark        = "add_watermark"
	KeyStartProcessing     = "start_processing"
	KeySelectFeatureAndURL = "select_feature_and_url"
	KeySelectFeature       = "select_feature"
	KeyEnterURL            = "enter_url"
)

// ButtonState is how the submit control is drawn
type ButtonState struct {
	Enabled bool
	Label   string // localization key
}

// Button evaluates the submit control for s
func Button(s State) ButtonState {
	hasURLs, hasFeature := s.HasURLs(), s.HasFeature()

	switch {
	case hasURLs && hasFeature:
		return ButtonState{Enabled: true, Label: ActionLabel(s.Feature)}
	case !hasURLs && !hasFeature:
		return ButtonState{Label: KeySelectFeatureAndURL}
	case hasURLs:
		return ButtonState{Label: KeySelectFeature}
	default:
		return ButtonState{Label: KeyEnterURL}
	}
}

// ActionLabel returns the label key for submitting kind
func ActionLabel(kind model.OperationKind) string {
	switch kind {
	case model.OperationDownload:
		return KeyStartDownload
	case model.OperationBGM:
		return KeyExtractBGM
	case model.OperationThumbnail:
		return KeyExtractThumbnail
	case model.OperationText:
		return KeyExtractText
	case model.OperationWatermark:
		return KeyAddWatermark
	default:
		return KeyStartProcessing
	}
}
