package model

import (
	"testing"
	"time"
)

func TestSaveTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		task     SaveTask
		expected string
	}{
		{SaveTask{OutputPath: "/home/u/Downloads/clip (1).mp4", Filename: "clip.mp4"}, "clip (1).mp4"},
		{SaveTask{Filename: "clip.mp4", SourceURL: "https://v.douyin.com/abc"}, "clip.mp4"},
		{SaveTask{SourceURL: " https://v.douyin.com/abc "}, "https://v.douyin.com/abc"},
		{SaveTask{}, ""},
	}

	for _, test := range tests {
		result := test.task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() = '%s', expected '%s'", result, test.expected)
		}
	}
}

func TestSaveTask_Duration(t *testing.T) {
	start := time.Now()
	task := &SaveTask{StartedAt: start}

	if task.Duration() != 0 {
		t.Errorf("Expected zero duration for unfinished task, got %v", task.Duration())
	}

	task.FinishedAt = start.Add(3 * time.Second)
	if task.Duration() != 3*time.Second {
		t.Errorf("Expected 3s duration, got %v", task.Duration())
	}
}
