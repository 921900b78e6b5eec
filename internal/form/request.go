package form

import (
	"errors"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/fastmedia/internal/model"
)

var (
	ErrNoFeature        = errors.New("no operation selected")
	ErrEmptyURLs        = errors.New("no URLs entered")
	ErrMissingWatermark = errors.New("watermark text or image required")
	ErrUnsupportedImage = errors.New("unsupported watermark image format")
)

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

// BuildRequest validates s and builds the body for its operation
func BuildRequest(s State) (model.ProcessRequest, error) {
	if !s.HasFeature() {
		return model.ProcessRequest{}, ErrNoFeature
	}
	if !s.HasURLs() {
		return model.ProcessRequest{}, ErrEmptyURLs
	}

	req := model.ProcessRequest{URLs: strings.TrimSpace(s.URLs)}

	switch s.Feature {
	case model.OperationThumbnail:
		ts := ParseTimestamp(s.Timestamp)
		req.Timestamp = &ts
	case model.OperationWatermark:
		text := strings.TrimSpace(s.WatermarkText)
		if text == "" && s.WatermarkImage == "" {
			return model.ProcessRequest{}, ErrMissingWatermark
		}
		req.WatermarkText = text
		req.WatermarkImage = s.WatermarkImage
	}
	return req, nil
}

// ParseTimestamp reads seconds from raw; anything unparsable is 0
func ParseTimestamp(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// AllowedImage reports whether name has a watermark image extension
func AllowedImage(name string) bool {
	return allowedImageExt[strings.ToLower(filepath.Ext(name))]
}
