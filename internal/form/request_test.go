package form

import (
	"errors"
	"testing"

	"github.com/ytget/fastmedia/internal/model"
)

func TestBuildRequest_Validation(t *testing.T) {
	tests := []struct {
		name  string
		state State
		err   error
	}{
		{"no feature", State{URLs: "https://a"}, ErrNoFeature},
		{"empty urls", State{Feature: model.OperationDownload, URLs: "   "}, ErrEmptyURLs},
		{"watermark without content", State{Feature: model.OperationWatermark, URLs: "https://a", WatermarkText: "  "}, ErrMissingWatermark},
		{"watermark with text", State{Feature: model.OperationWatermark, URLs: "https://a", WatermarkText: "mine"}, nil},
		{"watermark with image", State{Feature: model.OperationWatermark, URLs: "https://a", WatermarkImage: "uploads/a.png"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(tt.state)
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected error %v, got %v", tt.err, err)
			}
		})
	}
}

func TestBuildRequest_Fields(t *testing.T) {
	req, err := BuildRequest(State{
		Feature:       model.OperationThumbnail,
		URLs:          "  https://a,https://b \n",
		Timestamp:     "12.5",
		WatermarkText: "ignored",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if req.URLs != "https://a,https://b" {
		t.Errorf("Expected trimmed raw urls, got %q", req.URLs)
	}
	if req.Timestamp == nil || *req.Timestamp != 12.5 {
		t.Errorf("Expected timestamp 12.5, got %v", req.Timestamp)
	}
	if req.WatermarkText != "" {
		t.Error("Expected watermark fields only for watermark")
	}

	req, _ = BuildRequest(State{Feature: model.OperationDownload, URLs: "https://a", Timestamp: "3"})
	if req.Timestamp != nil {
		t.Error("Expected timestamp only for thumbnail")
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"", 0},
		{"abc", 0},
		{" 7 ", 7},
		{"1.25", 1.25},
		{"-3", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		if got := ParseTimestamp(tt.raw); got != tt.expected {
			t.Errorf("ParseTimestamp(%q) = %v, expected %v", tt.raw, got, tt.expected)
		}
	}
}

func TestAllowedImage(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"logo.png", true},
		{"LOGO.JPG", true},
		{"a.jpeg", true},
		{"a.gif", true},
		{"a.bmp", true},
		{"a.webp", false},
		{"a.svg", false},
		{"png", false},
	}

	for _, tt := range tests {
		if got := AllowedImage(tt.name); got != tt.expected {
			t.Errorf("AllowedImage(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
