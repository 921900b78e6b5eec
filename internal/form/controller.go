package form

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ytget/fastmedia/internal/api"
	"github.com/ytget/fastmedia/internal/model"
	"github.com/ytget/fastmedia/internal/view"
)

// Alert keys raised by the controller
const (
	KeySelectFeatureFirst  = "select_feature_first"
	KeyWatermarkRequired   = "watermark_required"
	KeyProcessingComplete  = "processing_complete"
	KeyProcessingFailed    = "processing_failed"
	KeyUnsupportedImage    = "unsupported_image"
	KeyUploadComplete      = "upload_complete"
	KeyUploadFailed        = "upload_failed"
	KeyWatermarkImageReset = "watermark_image_reset"
)

// Presenter shows controller output. Implementations must be safe to call
// from the goroutine running the controller.
type Presenter interface {
	ShowAlert(view.Alert)
	HideAlert()
	ShowResults(view.Results)
	ClearResults()
}

// Loader is the loading indicator driven around a request
type Loader interface {
	Start() bool
	Stop()
}

// Controller runs submits and uploads against the server
type Controller struct {
	api       api.Service
	loader    Loader
	presenter Presenter
	logger    *slog.Logger
}

// NewController creates a controller; a nil logger uses slog.Default
func NewController(svc api.Service, loader Loader, presenter Presenter, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		api:       svc,
		loader:    loader,
		presenter: presenter,
		logger:    logger,
	}
}

// Process validates s, submits it and presents the rendered results.
// Validation failures raise an alert and return before any request is made.
func (c *Controller) Process(ctx context.Context, s State) (view.Results, error) {
	req, err := BuildRequest(s)
	if err != nil {
		c.presenter.ShowAlert(view.Error(validationKey(err), ""))
		return view.Results{}, err
	}

	c.loader.Start()
	defer c.loader.Stop()

	c.presenter.HideAlert()
	c.presenter.ClearResults()

	c.logger.Info("submitting operation",
		"operation", s.Feature,
		"urls", len(SplitURLs(req.URLs)),
	)

	records, err := c.api.Process(ctx, s.Feature, req)
	if err != nil {
		c.logger.Error("operation failed", "operation", s.Feature, "error", err)
		c.presenter.ShowAlert(view.Error(KeyProcessingFailed, api.Message(err)))
		return view.Results{}, err
	}

	results := view.Render(records, s.Feature)
	c.presenter.ShowResults(results)
	c.presenter.ShowAlert(view.Success(KeyProcessingComplete, ""))
	return results, nil
}

// UploadWatermark uploads an image and records its server path in s
func (c *Controller) UploadWatermark(ctx context.Context, s State, name string, r io.Reader) (State, error) {
	if !AllowedImage(name) {
		c.presenter.ShowAlert(view.Error(KeyUnsupportedImage, name))
		return s, ErrUnsupportedImage
	}

	path, err := c.api.UploadWatermark(ctx, name, r)
	if err != nil {
		c.logger.Error("watermark upload failed", "file", name, "error", err)
		c.presenter.ShowAlert(view.Error(KeyUploadFailed, api.Message(err)))
		return s, err
	}

	s.WatermarkImage = path
	c.presenter.ShowAlert(view.Success(KeyUploadComplete, model.FileName(name)))
	return s, nil
}

func validationKey(err error) string {
	switch {
	case errors.Is(err, ErrNoFeature):
		return KeySelectFeatureFirst
	case errors.Is(err, ErrEmptyURLs):
		return KeyEnterURL
	case errors.Is(err, ErrMissingWatermark):
		return KeyWatermarkRequired
	default:
		return KeyProcessingFailed
	}
}
