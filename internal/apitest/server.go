// Package apitest runs an in-process fake of the FastMedia processing server
// for tests. It mirrors the observable contract of the real endpoints: JSON
// results per operation, multipart watermark upload, temp-file streaming and
// cleanup, and the legacy direct-download route.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ytget/fastmedia/internal/model"
)

// allowed watermark image extensions, as on the real server
var allowedImageExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
}

type failure struct {
	status  int
	message string
}

// Server is a fake processing server backed by gin
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	results      map[model.OperationKind][]model.ResultRecord
	failures     map[model.OperationKind]failure
	files        map[string][]byte
	failingFiles map[string]bool
	calls        map[string]int
	lastRequest  model.ProcessRequest
	downloads    []model.TempFileRequest
	cleaned      []model.CleanupRequest
	uploads      []string
}

// NewServer starts a fake server that is closed when the test ends
func NewServer(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		results:      make(map[model.OperationKind][]model.ResultRecord),
		failures:     make(map[model.OperationKind]failure),
		files:        make(map[string][]byte),
		failingFiles: make(map[string]bool),
		calls:        make(map[string]int),
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(s.countCalls)

	for _, kind := range model.AllOperationKinds() {
		r.POST(kind.Endpoint(), s.handleProcess(kind))
	}
	r.POST(model.EndpointUploadWatermark, s.handleUpload)
	r.POST(model.EndpointDownloadTemp, s.handleDownloadTemp)
	r.POST(model.EndpointCleanupTemp, s.handleCleanup)
	r.GET(model.EndpointLegacyDownload+"*filepath", s.handleLegacyDownload)
	return r
}

// SetResults configures the result list returned for kind
func (s *Server) SetResults(kind model.OperationKind, results []model.ResultRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[kind] = results
	delete(s.failures, kind)
}

// SetFailure makes kind answer with status and {"error": message}.
// An empty message makes the server answer with a non-JSON body.
func (s *Server) SetFailure(kind model.OperationKind, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[kind] = failure{status: status, message: message}
}

// AddFile registers a server-side file available for download
func (s *Server) AddFile(path string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
}

// FailFile makes downloads of path fail with a 500
func (s *Server) FailFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failingFiles[path] = true
}

// Calls returns how many requests hit path
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// TotalCalls returns the number of requests served
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// LastProcessRequest returns the most recent operation body
func (s *Server) LastProcessRequest() model.ProcessRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequest
}

// Downloads returns temp-file requests in arrival order
func (s *Server) Downloads() []model.TempFileRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.TempFileRequest(nil), s.downloads...)
}

// Cleaned returns cleanup requests in arrival order
func (s *Server) Cleaned() []model.CleanupRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CleanupRequest(nil), s.cleaned...)
}

// Uploads returns uploaded watermark filenames
func (s *Server) Uploads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.uploads...)
}

func (s *Server) countCalls(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, model.EndpointLegacyDownload) {
		path = model.EndpointLegacyDownload
	}
	s.mu.Lock()
	s.calls[path]++
	s.mu.Unlock()
	c.Next()
}

func (s *Server) handleProcess(kind model.OperationKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ProcessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}

		s.mu.Lock()
		s.lastRequest = req
		fail, failing := s.failures[kind]
		results := s.results[kind]
		s.mu.Unlock()

		if failing {
			if fail.message == "" {
				c.String(fail.status, "<html>internal error</html>")
				return
			}
			c.JSON(fail.status, model.ErrorResponse{Error: fail.message})
			return
		}

		if len(splitURLs(req.URLs)) == 0 {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "please provide valid video URLs"})
			return
		}
		if kind == model.OperationWatermark && req.WatermarkText == "" && req.WatermarkImage == "" {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "please provide watermark text or image"})
			return
		}

		if results == nil {
			results = echoResults(kind, req)
		}
		c.JSON(http.StatusOK, model.ProcessResponse{Results: results})
	}
}

func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file.Filename == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "no file selected"})
		return
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(file.Filename))] {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "unsupported file format"})
		return
	}

	s.mu.Lock()
	s.uploads = append(s.uploads, file.Filename)
	s.mu.Unlock()

	c.JSON(http.StatusOK, model.UploadResponse{FilePath: "uploads/" + filepath.Base(file.Filename)})
}

func (s *Server) handleDownloadTemp(c *gin.Context) {
	var req model.TempFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	s.mu.Lock()
	s.downloads = append(s.downloads, req)
	content, ok := s.files[req.TempFilePath]
	failing := s.failingFiles[req.TempFilePath]
	s.mu.Unlock()

	if failing {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "file read error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "file not found"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+req.DownloadFilename+`"`)
	c.Data(http.StatusOK, "application/octet-stream", content)
}

func (s *Server) handleCleanup(c *gin.Context) {
	var req model.CleanupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	s.mu.Lock()
	_, ok := s.files[req.TempFilePath]
	if ok {
		delete(s.files, req.TempFilePath)
		s.cleaned = append(s.cleaned, req)
	}
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "temporary file not found"})
		return
	}
	c.JSON(http.StatusOK, model.CleanupResponse{Message: "cleaned " + filepath.Base(req.TempFilePath)})
}

func (s *Server) handleLegacyDownload(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")

	s.mu.Lock()
	content, ok := s.files[path]
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "file not found"})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", content)
}

// echoResults fabricates one success record per URL when no results are configured
func echoResults(kind model.OperationKind, req model.ProcessRequest) []model.ResultRecord {
	urls := splitURLs(req.URLs)
	results := make([]model.ResultRecord, 0, len(urls))
	for _, u := range urls {
		record := model.ResultRecord{
			Status:   model.ResultSuccess,
			URL:      u,
			Platform: "test",
		}
		switch kind {
		case model.OperationThumbnail:
			record.Timestamp = req.Timestamp
		case model.OperationWatermark:
			record.WatermarkType = "text"
			if req.WatermarkImage != "" {
				record.WatermarkType = "image"
			}
		}
		results = append(results, record)
	}
	return results
}

func splitURLs(raw string) []string {
	var urls []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
