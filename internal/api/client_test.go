package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ytget/fastmedia/internal/apitest"
	"github.com/ytget/fastmedia/internal/model"
)

func newTestClient(t *testing.T) (*Client, *apitest.Server) {
	t.Helper()
	server := apitest.NewServer(t)
	return NewClient(Config{BaseURL: server.URL + "/"}), server
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:5000/"})

	if client.BaseURL() != "http://127.0.0.1:5000" {
		t.Errorf("Expected trailing slash to be trimmed, got %s", client.BaseURL())
	}
	if client.userAgent != DefaultUserAgent {
		t.Errorf("Expected default user agent, got %s", client.userAgent)
	}
	if client.http.Timeout != 0 {
		t.Errorf("Expected no timeout by default, got %v", client.http.Timeout)
	}
}

func TestProcess_Success(t *testing.T) {
	client, server := newTestClient(t)
	server.SetResults(model.OperationBGM, []model.ResultRecord{
		{Status: model.ResultSuccess, URL: "https://a", TempFilePath: "/tmp/a.mp3"},
		{Status: model.ResultError, URL: "https://b", Error: "unsupported platform"},
	})

	results, err := client.Process(context.Background(), model.OperationBGM, model.ProcessRequest{URLs: "https://a,https://b"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[1].Error != "unsupported platform" {
		t.Errorf("Expected per-item error to be preserved, got %q", results[1].Error)
	}
	if server.Calls(model.EndpointExtractBGM) != 1 {
		t.Errorf("Expected exactly one call to %s, got %d", model.EndpointExtractBGM, server.Calls(model.EndpointExtractBGM))
	}
}

func TestProcess_SendsOperationFields(t *testing.T) {
	client, server := newTestClient(t)
	ts := 12.5

	_, err := client.Process(context.Background(), model.OperationThumbnail, model.ProcessRequest{URLs: "https://a", Timestamp: &ts})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got := server.LastProcessRequest()
	if got.Timestamp == nil || *got.Timestamp != 12.5 {
		t.Errorf("Expected timestamp 12.5 to reach the server, got %v", got.Timestamp)
	}
	if got.URLs != "https://a" {
		t.Errorf("Expected raw urls to be sent, got %q", got.URLs)
	}
}

func TestProcess_ServerErrorMessage(t *testing.T) {
	client, server := newTestClient(t)
	server.SetFailure(model.OperationDownload, http.StatusInternalServerError, "yt-dlp crashed")

	_, err := client.Process(context.Background(), model.OperationDownload, model.ProcessRequest{URLs: "https://a"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", apiErr.StatusCode)
	}
	if Message(err) != "yt-dlp crashed" {
		t.Errorf("Expected server message, got %q", Message(err))
	}
}

func TestProcess_GenericFallback(t *testing.T) {
	client, server := newTestClient(t)
	server.SetFailure(model.OperationText, http.StatusBadGateway, "")

	_, err := client.Process(context.Background(), model.OperationText, model.ProcessRequest{URLs: "https://a"})
	if Message(err) != MsgRequestFailed {
		t.Errorf("Expected fallback %q, got %q", MsgRequestFailed, Message(err))
	}
}

func TestProcess_UnknownOperation(t *testing.T) {
	client, server := newTestClient(t)

	_, err := client.Process(context.Background(), model.OperationKind("compress"), model.ProcessRequest{URLs: "https://a"})
	if !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("Expected ErrUnknownOperation, got %v", err)
	}
	if server.TotalCalls() != 0 {
		t.Errorf("Expected no network calls, got %d", server.TotalCalls())
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	client, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Process(ctx, model.OperationDownload, model.ProcessRequest{URLs: "https://a"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestUploadWatermark(t *testing.T) {
	client, server := newTestClient(t)

	path, err := client.UploadWatermark(context.Background(), "logo.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != "uploads/logo.png" {
		t.Errorf("Expected uploads/logo.png, got %s", path)
	}
	if uploads := server.Uploads(); len(uploads) != 1 || uploads[0] != "logo.png" {
		t.Errorf("Expected one upload named logo.png, got %v", uploads)
	}

	_, err = client.UploadWatermark(context.Background(), "notes.txt", strings.NewReader("x"))
	if Message(err) != "unsupported file format" {
		t.Errorf("Expected unsupported format error, got %v", err)
	}
}

func TestDownloadTempFile(t *testing.T) {
	client, server := newTestClient(t)
	server.AddFile("/tmp/x/out.mp4", []byte("video-bytes"))

	var buf bytes.Buffer
	n, err := client.DownloadTempFile(context.Background(), model.TempFileRequest{
		TempFilePath:     "/tmp/x/out.mp4",
		DownloadFilename: "out.mp4",
		FileType:         model.FileTypeVideo,
	}, &buf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != int64(len("video-bytes")) || buf.String() != "video-bytes" {
		t.Errorf("Expected streamed content, got %d bytes %q", n, buf.String())
	}

	_, err = client.DownloadTempFile(context.Background(), model.TempFileRequest{TempFilePath: "/missing"}, io.Discard)
	if Message(err) != "file not found" {
		t.Errorf("Expected server message for missing file, got %v", err)
	}
}

func TestCleanupTempFile(t *testing.T) {
	client, server := newTestClient(t)
	server.AddFile("/tmp/a.mp3", []byte("a"))

	msg, err := client.CleanupTempFile(context.Background(), model.CleanupRequest{TempFilePath: "/tmp/a.mp3", FileType: model.FileTypeBGM})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if msg != "cleaned a.mp3" {
		t.Errorf("Expected server message, got %q", msg)
	}

	cleaned := server.Cleaned()
	if len(cleaned) != 1 || cleaned[0].FileType != model.FileTypeBGM {
		t.Errorf("Expected one bgm cleanup, got %+v", cleaned)
	}

	_, err = client.CleanupTempFile(context.Background(), model.CleanupRequest{TempFilePath: "/tmp/a.mp3"})
	if err == nil {
		t.Error("Expected error when cleaning an already removed file")
	}
}

func TestLegacyDownloadURL(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:5000"})

	got := client.LegacyDownloadURL("downloads/videos/my clip.mp4")
	expected := "http://localhost:5000/download/downloads%2Fvideos%2Fmy%20clip.mp4"
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestLegacyDownloadURL_ServedByServer(t *testing.T) {
	client, server := newTestClient(t)
	server.AddFile("downloads/videos/a.mp4", []byte("legacy"))

	resp, err := http.Get(client.LegacyDownloadURL("downloads/videos/a.mp4"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "legacy" {
		t.Errorf("Expected legacy content, got %d %q", resp.StatusCode, string(body))
	}
}

func TestDownloadLegacyFile(t *testing.T) {
	client, server := newTestClient(t)
	server.AddFile("downloads/videos/b.mp4", []byte("permanent"))

	var buf bytes.Buffer
	n, err := client.DownloadLegacyFile(context.Background(), "downloads/videos/b.mp4", &buf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != int64(len("permanent")) || buf.String() != "permanent" {
		t.Errorf("Expected permanent file content, got %q", buf.String())
	}

	_, err = client.DownloadLegacyFile(context.Background(), "downloads/missing.mp4", io.Discard)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 APIError, got %v", err)
	}
}

func TestMessage(t *testing.T) {
	if Message(nil) != "" {
		t.Error("Expected empty message for nil error")
	}
	wrapped := errors.Join(errors.New("context"), &APIError{StatusCode: 400, Message: "bad urls"})
	if Message(wrapped) != "bad urls" {
		t.Errorf("Expected APIError message through wrapping, got %q", Message(wrapped))
	}
	if Message(errors.New("dial tcp: refused")) != "dial tcp: refused" {
		t.Error("Expected plain error string")
	}
}
