package model

import (
	"strings"
	"time"
)

// SaveTask tracks one server file being written to the local downloads folder
type SaveTask struct {
	ID         string
	SourceURL  string // URL the server processed, if any
	RemotePath string // temp or permanent path on the server
	Filename   string // requested download filename
	FileType   string
	Status     TaskStatus
	Bytes      int64  // bytes written so far
	LastError  string // last error message if any
	OutputPath string // local path of the saved file
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns the saved filename, requested filename, or source URL in order of preference
func (st *SaveTask) GetDisplayTitle() string {
	if st.OutputPath != "" {
		return FileName(st.OutputPath)
	}

	if st.Filename != "" {
		return st.Filename
	}

	return strings.TrimSpace(st.SourceURL)
}

// Duration returns how long the task ran, or zero while unfinished
func (st *SaveTask) Duration() time.Duration {
	if st.StartedAt.IsZero() || st.FinishedAt.IsZero() {
		return 0
	}
	return st.FinishedAt.Sub(st.StartedAt)
}
