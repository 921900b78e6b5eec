package model

import "testing"

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{500, "500 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1572864, "1.5 MB"},
		{1234567, "1.18 MB"},
		{1073741824, "1 GB"},
		{5 * 1099511627776, "5120 GB"},
	}

	for _, test := range tests {
		result := FormatFileSize(test.bytes)
		if result != test.expected {
			t.Errorf("FormatFileSize(%d) = %s, expected %s", test.bytes, result, test.expected)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/tmp/x/out.mp4", "out.mp4"},
		{`C:\tmp\x\out.mp4`, "out.mp4"},
		{"downloads/videos\\mixed.mp3", "mixed.mp3"},
		{"plain.txt", "plain.txt"},
		{"/trailing/", "/trailing/"},
		{`C:\tmp\`, `C:\tmp\`},
		{"", ""},
	}

	for _, test := range tests {
		result := FileName(test.path)
		if result != test.expected {
			t.Errorf("FileName(%q) = %q, expected %q", test.path, result, test.expected)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := FormatSeconds(12.5); got != "12.5s" {
		t.Errorf("FormatSeconds(12.5) = %s, expected 12.5s", got)
	}
	if got := FormatSeconds(0); got != "0s" {
		t.Errorf("FormatSeconds(0) = %s, expected 0s", got)
	}
}
