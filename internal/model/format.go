package model

import (
	"math"
	"strconv"
	"strings"
)

// File size formatting constants
const (
	FileSizeUnit = 1024
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize formats a byte count with 1024-based units and at most two
// decimals, trimming trailing zeros: 1536 -> "1.5 KB", 1048576 -> "1 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 " + fileSizeUnits[0]
	}

	value := float64(bytes)
	exp := 0
	for value >= FileSizeUnit && exp < len(fileSizeUnits)-1 {
		value /= FileSizeUnit
		exp++
	}

	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + fileSizeUnits[exp]
}

// FileName returns the final segment of a path separated by / or \.
// A path ending in a separator is returned unchanged.
func FileName(path string) string {
	name := path[strings.LastIndexAny(path, "/\\")+1:]
	if name == "" {
		return path
	}
	return name
}

// FormatSeconds renders a timestamp in seconds, e.g. 12.5 -> "12.5s"
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}
