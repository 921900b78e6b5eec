package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	if err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.mp4")); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "clip.mp4", "clip.mp4"},
		{"separators", `a/b\c.mp4`, "a_b_c.mp4"},
		{"windows reserved", `what?:"x"<y>|.mp3`, "what___x__y__.mp3"},
		{"control chars", "a\x00b\tc.jpg", "a_b_c.jpg"},
		{"dots only", " .. ", FallbackFileName},
		{"empty", "", FallbackFileName},
		{"unicode kept", "视频 01.mp4", "视频 01.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("x", 300) + ".mp4")

	if len([]rune(got)) != MaxFileNameLength {
		t.Errorf("Expected %d runes, got %d", MaxFileNameLength, len([]rune(got)))
	}
	if !strings.HasSuffix(got, ".mp4") {
		t.Errorf("Expected extension to be kept, got %s", got)
	}
}

func TestCreateUniqueFile(t *testing.T) {
	dir := t.TempDir()

	names := []string{"clip.mp4", "clip (1).mp4", "clip (2).mp4"}
	for _, expected := range names {
		f, err := CreateUniqueFile(dir, "clip.mp4")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		f.Close()

		if filepath.Base(f.Name()) != expected {
			t.Errorf("Expected %s, got %s", expected, filepath.Base(f.Name()))
		}
	}
}

func TestCreateUniqueFile_MissingDir(t *testing.T) {
	_, err := CreateUniqueFile(filepath.Join(t.TempDir(), "nope"), "a.mp4")
	if err == nil {
		t.Error("Expected error for a missing directory")
	}
}
