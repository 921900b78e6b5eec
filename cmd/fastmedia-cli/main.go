// Command fastmedia-cli submits URLs to a FastMedia server from a terminal,
// prints the per-URL results and can save the produced files locally.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/ytget/fastmedia/internal/api"
	"github.com/ytget/fastmedia/internal/batch"
	"github.com/ytget/fastmedia/internal/config"
	"github.com/ytget/fastmedia/internal/download"
	"github.com/ytget/fastmedia/internal/form"
	"github.com/ytget/fastmedia/internal/i18n"
	"github.com/ytget/fastmedia/internal/model"
	"github.com/ytget/fastmedia/internal/view"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], config.LoadEnv(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	op             string
	urls           string
	timestamp      string
	watermarkText  string
	watermarkImage string
	server         string
	out            string
	lang           string
	save           bool
	cleanup        bool
}

func parseFlags(args []string, env config.Env, stderr io.Writer) (options, error) {
	server := env.ServerURL
	if server == "" {
		server = config.DefaultServerURL
	}
	out := env.DownloadDir
	if out == "" {
		out = "."
	}

	var opts options
	fs := flag.NewFlagSet("fastmedia-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.op, "op", "", "operation: download, bgm, thumbnail, text or watermark")
	fs.StringVar(&opts.urls, "urls", "", "video URLs separated by commas or newlines")
	fs.StringVar(&opts.timestamp, "timestamp", "", "thumbnail timestamp in seconds")
	fs.StringVar(&opts.watermarkText, "watermark-text", "", "watermark text")
	fs.StringVar(&opts.watermarkImage, "watermark-image", "", "local watermark image to upload")
	fs.StringVar(&opts.server, "server", server, "processing server URL")
	fs.StringVar(&opts.out, "out", out, "directory for saved files")
	fs.StringVar(&opts.lang, "lang", env.Language, "output language: en or zh")
	fs.BoolVar(&opts.save, "save", false, "save every downloadable result into -out")
	fs.BoolVar(&opts.cleanup, "cleanup", false, "delete temporary server files after saving")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.urls == "" && fs.NArg() > 0 {
		opts.urls = strings.Join(fs.Args(), ",")
	}
	return opts, nil
}

// run executes one CLI invocation and returns the exit code
func run(ctx context.Context, args []string, env config.Env, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, env, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := config.NewLogger(env.Log, stderr)

	loc := i18n.NewLocalization()
	loc.SetLanguage(opts.lang)

	client := api.NewClient(api.Config{
		BaseURL: opts.server,
		Timeout: env.HTTPTimeout,
		Logger:  logger,
	})
	printer := &textPresenter{w: stdout, loc: loc}
	controller := form.NewController(client, noopLoader{}, printer, logger)

	state := form.State{}.SelectFeature(model.OperationKind(opts.op))
	state.URLs = opts.urls
	state.Timestamp = opts.timestamp
	state.WatermarkText = opts.watermarkText

	if opts.watermarkImage != "" {
		state, err = uploadImage(ctx, controller, printer, state, opts.watermarkImage)
		if err != nil {
			return exitFailure
		}
	}

	results, err := controller.Process(ctx, state)
	if err != nil {
		if errors.Is(err, form.ErrNoFeature) || errors.Is(err, form.ErrEmptyURLs) || errors.Is(err, form.ErrMissingWatermark) {
			return exitUsage
		}
		return exitFailure
	}

	code := exitOK
	for _, row := range results.Rows {
		if !row.Success {
			code = exitFailure
		}
	}

	if !opts.save {
		return code
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		printer.ShowAlert(view.Error(i18n.KeyDownloadFailed, err.Error()))
		return exitFailure
	}
	saver := download.NewService(client, opts.out, logger)

	var items []model.ResultRecord
	for _, row := range results.Rows {
		if row.HasAction(view.ActionDownload) {
			items = append(items, row.Record)
		}
	}
	if len(items) == 0 {
		return code
	}

	downloader := batch.NewDownloader(saver, batch.Config{
		Delay:  env.BatchDelay,
		Notify: printer.ShowAlert,
		Logger: logger,
	})
	summary := downloader.Run(ctx, items, results.Kind)
	for _, path := range summary.Saved {
		fmt.Fprintf(stdout, "  %s\n", path)
	}
	for _, f := range summary.Failed {
		printer.ShowAlert(view.Error(i18n.KeyDownloadFailed, f.Record.DownloadName()+": "+api.Message(f.Err)))
	}
	if len(summary.Failed) > 0 || len(summary.Saved) < summary.Total {
		code = exitFailure
	}

	if opts.cleanup {
		failed := make(map[string]bool, len(summary.Failed))
		for _, f := range summary.Failed {
			failed[f.Record.SourcePath()] = true
		}
		fileType := results.Kind.FileType()
		for _, item := range items[:len(summary.Saved)+len(summary.Failed)] {
			if !item.IsTemp() || failed[item.SourcePath()] {
				continue
			}
			msg, err := saver.Cleanup(ctx, item, fileType)
			if err != nil {
				printer.ShowAlert(view.Error(i18n.KeyCleanupFailed, api.Message(err)))
				code = exitFailure
				continue
			}
			printer.ShowAlert(view.Success(i18n.KeyCleanupDone, msg))
		}
	}

	return code
}

func uploadImage(ctx context.Context, controller *form.Controller, printer form.Presenter, state form.State, path string) (form.State, error) {
	f, err := os.Open(path)
	if err != nil {
		printer.ShowAlert(view.Error(form.KeyUploadFailed, err.Error()))
		return state, err
	}
	defer f.Close()
	return controller.UploadWatermark(ctx, state, filepath.Base(path), f)
}

// textPresenter prints controller output as plain text
type textPresenter struct {
	mu  sync.Mutex
	w   io.Writer
	loc *i18n.Localization
}

func (p *textPresenter) ShowAlert(a view.Alert) {
	p.mu.Lock()
	defer p.mu.Unlock()
	prefix := "•"
	switch a.Level {
	case view.LevelSuccess:
		prefix = view.MarkerSuccess
	case view.LevelError:
		prefix = view.MarkerFailure
	}
	fmt.Fprintf(p.w, "%s %s\n", prefix, p.loc.AlertText(a))
}

func (p *textPresenter) HideAlert() {}

func (p *textPresenter) ShowResults(results view.Results) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, row := range results.Rows {
		source := row.URL
		if row.URLPlaceholder {
			source = p.loc.GetText(i18n.KeyLocalSource)
		}
		fmt.Fprintf(p.w, "#%d %s %s  %s\n", row.Index, row.Marker, p.loc.GetText(row.StatusKey), source)
		for _, d := range row.Details {
			fmt.Fprintf(p.w, "    %s: %s\n", p.loc.GetText(d.LabelKey), d.Value)
		}
		if !row.Success {
			msg := row.Error
			if msg == view.UnknownError {
				msg = p.loc.GetText(view.KeyUnknownError)
			}
			fmt.Fprintf(p.w, "    %s\n", msg)
		}
		if row.Text != nil {
			fmt.Fprintf(p.w, "    %s\n", strings.ReplaceAll(row.Text.Full, "\n", "\n    "))
		}
	}
}

func (p *textPresenter) ClearResults() {}

// noopLoader stands in for the progress bar
type noopLoader struct{}

func (noopLoader) Start() bool { return true }
func (noopLoader) Stop()       {}
