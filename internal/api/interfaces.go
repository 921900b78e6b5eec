package api

import (
	"context"
	"io"

	"github.com/ytget/fastmedia/internal/model"
)

// Service defines the server operations the client depends on.
type Service interface {
	// Process submits one operation for every URL in req and returns the per-URL results
	Process(ctx context.Context, kind model.OperationKind, req model.ProcessRequest) ([]model.ResultRecord, error)

	// UploadWatermark uploads an image and returns its server-side path
	UploadWatermark(ctx context.Context, filename string, r io.Reader) (string, error)

	// DownloadTempFile streams a produced file into w and returns the bytes written
	DownloadTempFile(ctx context.Context, req model.TempFileRequest, w io.Writer) (int64, error)

	// CleanupTempFile deletes a temp artifact and returns the server message
	CleanupTempFile(ctx context.Context, req model.CleanupRequest) (string, error)

	// DownloadLegacyFile streams a permanent file served under /download/ into w
	DownloadLegacyFile(ctx context.Context, filePath string, w io.Writer) (int64, error)

	// LegacyDownloadURL returns the direct-download URL for a permanent file path
	LegacyDownloadURL(filePath string) string
}
