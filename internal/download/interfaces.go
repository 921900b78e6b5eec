package download

import (
	"context"

	"github.com/ytget/fastmedia/internal/model"
)

// Saver defines the interface for the save service.
type Saver interface {
	SetUpdateCallback(func(*model.SaveTask))
	Save(ctx context.Context, rec model.ResultRecord, fileType string) (string, error)
	Cleanup(ctx context.Context, rec model.ResultRecord, fileType string) (string, error)
	GetAllTasks() []*model.SaveTask
	ClearFinished() int

	// SetDownloadDirectory sets the directory new saves are written to
	SetDownloadDirectory(dir string)

	// DownloadDirectory returns the current target directory
	DownloadDirectory() string
}

var _ Saver = (*Service)(nil)
