package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/ytget/fastmedia/internal/model"
	"github.com/ytget/fastmedia/internal/view"
)

// DefaultDelay separates consecutive saves
const DefaultDelay = 500 * time.Millisecond

// Notification keys
const (
	KeyBatchConfirm  = "batch_confirm"
	KeyBatchStarted  = "batch_started"
	KeyBatchComplete = "batch_complete"
)

// Fetcher saves one record locally and returns where it was written
type Fetcher interface {
	Save(ctx context.Context, rec model.ResultRecord, fileType string) (string, error)
}

// Confirmation is the content of the batch confirm dialog
type Confirmation struct {
	Count int
	Lines []string // "1. name" per file
}

// Confirm lists the files a batch would save
func Confirm(items []model.ResultRecord) Confirmation {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item.DownloadName()))
	}
	return Confirmation{Count: len(items), Lines: lines}
}

// Failure is one item that could not be saved
type Failure struct {
	Record model.ResultRecord
	Err    error
}

// Summary is the outcome of a batch run
type Summary struct {
	Total  int
	Saved  []string // local paths in item order
	Failed []Failure
}

// Config controls a Downloader; zero fields use defaults
type Config struct {
	Delay  time.Duration
	Notify func(view.Alert)
	Logger *slog.Logger
}

// Downloader runs batches strictly in order
type Downloader struct {
	fetcher Fetcher
	delay   time.Duration
	notify  func(view.Alert)
	logger  *slog.Logger
}

// NewDownloader creates a batch downloader on top of fetcher
func NewDownloader(fetcher Fetcher, cfg Config) *Downloader {
	d := &Downloader{
		fetcher: fetcher,
		delay:   cfg.Delay,
		notify:  cfg.Notify,
		logger:  cfg.Logger,
	}
	if d.delay <= 0 {
		d.delay = DefaultDelay
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Run saves items one after another using the file type of kind. A failed
// item is recorded and the run moves on; cancelling ctx stops the remaining
// items.
func (d *Downloader) Run(ctx context.Context, items []model.ResultRecord, kind model.OperationKind) Summary {
	summary := Summary{Total: len(items)}
	fileType := kind.FileType()

	d.emit(view.Info(KeyBatchStarted, fmt.Sprint(len(items))))
	d.logger.Info("batch started", "items", len(items), "file_type", fileType, "delay", d.delay)

	for i, item := range items {
		if err := d.pause(ctx, i); err != nil {
			d.logger.Warn("batch cancelled", "remaining", len(items)-i, "error", err)
			break
		}

		path, err := d.fetcher.Save(ctx, item, fileType)
		if err != nil {
			d.logger.Error("batch item failed",
				"index", i+1,
				"file", item.DownloadName(),
				"error", err,
			)
			summary.Failed = append(summary.Failed, Failure{Record: item, Err: err})
			continue
		}
		summary.Saved = append(summary.Saved, path)
	}

	d.logger.Info("batch finished", "saved", len(summary.Saved), "failed", len(summary.Failed))
	d.emit(view.Success(KeyBatchComplete, fmt.Sprintf("%d/%d", len(summary.Saved), summary.Total)))
	return summary
}

// pause blocks for a full delay before every item but the first. The limiter
// is created once the previous attempt has ended, and its initial token is
// spent, so Wait only returns after the delay has refilled it.
func (d *Downloader) pause(ctx context.Context, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}
	gap := rate.NewLimiter(rate.Every(d.delay), 1)
	gap.Allow()
	return gap.Wait(ctx)
}

func (d *Downloader) emit(a view.Alert) {
	if d.notify != nil {
		d.notify(a)
	}
}
