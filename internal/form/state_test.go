package form

import (
	"reflect"
	"testing"

	"github.com/ytget/fastmedia/internal/model"
)

func TestSelectFeature_SingleActive(t *testing.T) {
	s := State{}.SelectFeature(model.OperationBGM)
	s = s.SelectFeature(model.OperationWatermark)

	if s.Feature != model.OperationWatermark {
		t.Errorf("Expected watermark to be active, got %s", s.Feature)
	}

	s = s.SelectFeature("compress")
	if s.HasFeature() {
		t.Errorf("Expected unknown kind to clear the selection, got %s", s.Feature)
	}
}

func TestSelectFeature_DoesNotMutateCaller(t *testing.T) {
	original := State{Feature: model.OperationText}
	_ = original.SelectFeature(model.OperationDownload)

	if original.Feature != model.OperationText {
		t.Error("Expected the original state to be unchanged")
	}
}

func TestResetWatermarkImage(t *testing.T) {
	s := State{WatermarkImage: "uploads/logo.png", WatermarkText: "mine"}.ResetWatermarkImage()

	if s.WatermarkImage != "" {
		t.Error("Expected image path to be cleared")
	}
	if s.WatermarkText != "mine" {
		t.Error("Expected watermark text to be kept")
	}
}

func TestSectionFor(t *testing.T) {
	tests := []struct {
		kind     model.OperationKind
		expected Section
	}{
		{model.OperationDownload, SectionNone},
		{model.OperationBGM, SectionNone},
		{model.OperationThumbnail, SectionTimestamp},
		{model.OperationText, SectionNone},
		{model.OperationWatermark, SectionWatermark},
		{"", SectionNone},
	}

	for _, tt := range tests {
		if got := SectionFor(tt.kind); got != tt.expected {
			t.Errorf("%q: expected section %q, got %q", tt.kind, tt.expected, got)
		}
	}
}

func TestSplitURLs(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{"", []string{}},
		{"https://a", []string{"https://a"}},
		{"https://a, https://b", []string{"https://a", "https://b"}},
		{"https://a\nhttps://b\r\n,,https://c ", []string{"https://a", "https://b", "https://c"}},
		{" , \n ", []string{}},
	}

	for _, tt := range tests {
		got := SplitURLs(tt.raw)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitURLs(%q) = %v, expected %v", tt.raw, got, tt.expected)
		}
	}
}
