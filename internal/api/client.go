package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/fastmedia/internal/model"
)

// DefaultUserAgent identifies the client to the server
const DefaultUserAgent = "FastMedia-Desktop/dev"

// maxErrorBody bounds how much of an error body is read for a message
const maxErrorBody = 64 * 1024

// Config controls the HTTP client.
type Config struct {
	// BaseURL is the server root, e.g. "http://127.0.0.1:5000"
	BaseURL string

	// Timeout applies to each whole request; zero means none and the
	// caller's context decides.
	Timeout time.Duration

	// UserAgent overrides DefaultUserAgent
	UserAgent string

	// HTTPClient overrides the underlying client (tests)
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client talks to the processing server over HTTP
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

// NewClient creates a new API client
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: userAgent,
		http:      httpClient,
		logger:    logger,
	}
}

// BaseURL returns the server root the client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Process submits one operation and returns the per-URL results
func (c *Client) Process(ctx context.Context, kind model.OperationKind, req model.ProcessRequest) ([]model.ResultRecord, error) {
	endpoint := kind.Endpoint()
	if endpoint == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, kind)
	}

	start := time.Now()
	resp, err := c.postJSON(ctx, endpoint, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var data model.ProcessResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&data)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := data.Error
		if decodeErr != nil || msg == "" {
			msg = MsgRequestFailed
		}
		c.logger.Warn("process request rejected",
			"operation", kind,
			"status", resp.StatusCode,
			"error", msg,
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}

	c.logger.Info("process request completed",
		"operation", kind,
		"results", len(data.Results),
		"elapsed", time.Since(start),
	)
	return data.Results, nil
}

// UploadWatermark posts an image as the multipart "file" field
func (c *Client) UploadWatermark(ctx context.Context, filename string, r io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read watermark image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(model.EndpointUploadWatermark), &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload watermark: %w", err)
	}
	defer resp.Body.Close()

	var data model.UploadResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&data)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := data.Error
		if decodeErr != nil || msg == "" {
			msg = MsgUploadFailed
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}
	if data.FilePath == "" {
		return "", &APIError{StatusCode: resp.StatusCode, Message: MsgUploadFailed}
	}

	c.logger.Info("watermark uploaded", "filename", filename, "path", data.FilePath)
	return data.FilePath, nil
}

// DownloadTempFile streams a produced file into w
func (c *Client) DownloadTempFile(ctx context.Context, req model.TempFileRequest, w io.Writer) (int64, error) {
	resp, err := c.postJSON(ctx, model.EndpointDownloadTemp, req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body, MsgDownloadFailed)}
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("stream %s: %w", req.DownloadFilename, err)
	}

	c.logger.Debug("temp file streamed", "file", req.DownloadFilename, "bytes", n)
	return n, nil
}

// CleanupTempFile deletes a temp artifact on the server
func (c *Client) CleanupTempFile(ctx context.Context, req model.CleanupRequest) (string, error) {
	resp, err := c.postJSON(ctx, model.EndpointCleanupTemp, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body, MsgCleanupFailed)}
	}

	var data model.CleanupResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Message == "" {
		return MsgCleanupDone, nil
	}
	return data.Message, nil
}

// DownloadLegacyFile streams a permanent file from the direct-download route
func (c *Client) DownloadLegacyFile(ctx context.Context, filePath string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LegacyDownloadURL(filePath), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", filePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body, MsgDownloadFailed)}
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("stream %s: %w", filePath, err)
	}
	return n, nil
}

// LegacyDownloadURL returns the direct-download URL for a permanent file path
func (c *Client) LegacyDownloadURL(filePath string) string {
	return c.url(model.EndpointLegacyDownload + url.PathEscape(filePath))
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// postJSON sends body as JSON; the caller closes the response body
func (c *Client) postJSON(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	return resp, nil
}

// readErrorMessage pulls the "error" field out of a JSON error body
func readErrorMessage(r io.Reader, fallback string) string {
	var data model.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&data); err != nil || data.Error == "" {
		return fallback
	}
	return data.Error
}
