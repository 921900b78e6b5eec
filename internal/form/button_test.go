package form

import (
	"testing"

	"github.com/ytget/fastmedia/internal/model"
)

func TestButton_DecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		urls     string
		feature  model.OperationKind
		enabled  bool
		expected string
	}{
		{"urls and feature", "https://a", model.OperationDownload, true, KeyStartDownload},
		{"nothing", "", "", false, KeySelectFeatureAndURL},
		{"urls only", "https://a", "", false, KeySelectFeature},
		{"feature only", "", model.OperationBGM, false, KeyEnterURL},
		{"whitespace urls", "  \n\t", model.OperationBGM, false, KeyEnterURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := State{URLs: tt.urls}.SelectFeature(tt.feature)
			got := Button(state)
			if got.Enabled != tt.enabled {
				t.Errorf("Expected enabled=%v, got %v", tt.enabled, got.Enabled)
			}
			if got.Label != tt.expected {
				t.Errorf("Expected label %s, got %s", tt.expected, got.Label)
			}
		})
	}
}

func TestButton_LabelPerFeature(t *testing.T) {
	tests := []struct {
		kind     model.OperationKind
		expected string
	}{
		{model.OperationDownload, KeyStartDownload},
		{model.OperationBGM, KeyExtractBGM},
		{model.OperationThumbnail, KeyExtractThumbnail},
		{model.OperationText, KeyExtractText},
		{model.OperationWatermark, KeyAddWatermark},
	}

	for _, tt := range tests {
		got := Button(State{URLs: "https://a", Feature: tt.kind})
		if !got.Enabled || got.Label != tt.expected {
			t.Errorf("%s: expected enabled %s, got %+v", tt.kind, tt.expected, got)
		}
	}

	if ActionLabel("compress") != KeyStartProcessing {
		t.Error("Expected generic label for unknown kinds")
	}
}
