package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/fastmedia/internal/api"
	"github.com/ytget/fastmedia/internal/model"
	"github.com/ytget/fastmedia/internal/platform"
)

// progressInterval throttles byte-count updates to the UI
const progressInterval = 250 * time.Millisecond

var (
	// ErrNothingToSave is returned for records without a retrievable file
	ErrNothingToSave = errors.New("result has no file to save")

	// ErrNotTemporary is returned when cleaning up a permanent file
	ErrNotTemporary = errors.New("result is not a temporary file")
)

// Service saves server files locally
type Service struct {
	tasks       map[string]*model.SaveTask
	tasksMutex  sync.RWMutex
	api         api.Service
	downloadDir string
	onUpdate    func(*model.SaveTask) // callback for UI updates
	logger      *slog.Logger
}

// NewService creates a new save service writing into downloadDir
func NewService(client api.Service, downloadDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		tasks:       make(map[string]*model.SaveTask),
		api:         client,
		downloadDir: downloadDir,
		logger:      logger,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.SaveTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetDownloadDirectory sets the download directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.downloadDir = dir
}

// DownloadDirectory returns the download directory
func (s *Service) DownloadDirectory() string {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.downloadDir
}

// Save streams the file behind rec into the download directory and returns
// the local path. Temp artifacts come from the temp-file endpoint, permanent
// files from the direct-download route.
func (s *Service) Save(ctx context.Context, rec model.ResultRecord, fileType string) (string, error) {
	if !rec.HasFile() {
		return "", ErrNothingToSave
	}

	task := s.addTask(rec, fileType)

	dir := s.DownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		err = fmt.Errorf("create download directory: %w", err)
		s.finishTask(ctx, task, err)
		return "", err
	}

	f, err := platform.CreateUniqueFile(dir, platform.SanitizeFilename(rec.DownloadName()))
	if err != nil {
		s.finishTask(ctx, task, err)
		return "", err
	}

	s.tasksMutex.Lock()
	task.OutputPath = f.Name()
	task.Status = model.TaskStatusSaving
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	w := &progressWriter{w: f, onProgress: func(n int64) { s.updateBytes(task, n) }}
	if rec.IsTemp() {
		_, err = s.api.DownloadTempFile(ctx, model.NewTempFileRequest(rec, fileType), w)
	} else {
		_, err = s.api.DownloadLegacyFile(ctx, rec.FilePath, w)
	}

	closeErr := f.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("close %s: %w", f.Name(), closeErr)
	}

	if err != nil {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn("failed to remove partial file", "path", f.Name(), "error", rmErr)
		}
		s.tasksMutex.Lock()
		task.OutputPath = ""
		s.tasksMutex.Unlock()
		s.finishTask(ctx, task, err)
		return "", err
	}

	s.tasksMutex.Lock()
	task.Bytes = w.written
	s.tasksMutex.Unlock()
	s.finishTask(ctx, task, nil)

	s.logger.Info("file saved", "path", f.Name(), "bytes", w.written, "file_type", fileType)
	return f.Name(), nil
}

// Cleanup asks the server to delete the temp artifact behind rec
func (s *Service) Cleanup(ctx context.Context, rec model.ResultRecord, fileType string) (string, error) {
	if !rec.IsTemp() {
		return "", ErrNotTemporary
	}

	msg, err := s.api.CleanupTempFile(ctx, model.NewCleanupRequest(rec, fileType))
	if err != nil {
		s.logger.Error("cleanup failed", "path", rec.TempFilePath, "error", err)
		return "", err
	}

	s.logger.Info("temp file cleaned up", "path", rec.TempFilePath)
	return msg, nil
}

// GetAllTasks returns all tasks, oldest first
func (s *Service) GetAllTasks() []*model.SaveTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.SaveTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// ClearFinished forgets every finished task and returns how many were removed
func (s *Service) ClearFinished() int {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	removed := 0
	for id, task := range s.tasks {
		if task.Status.IsFinished() {
			delete(s.tasks, id)
			removed++
		}
	}
	return removed
}

func (s *Service) addTask(rec model.ResultRecord, fileType string) *model.SaveTask {
	task := &model.SaveTask{
		ID:         generateTaskID(),
		SourceURL:  rec.URL,
		RemotePath: rec.SourcePath(),
		Filename:   rec.DownloadName(),
		FileType:   fileType,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return task
}

func (s *Service) updateBytes(task *model.SaveTask, n int64) {
	s.tasksMutex.Lock()
	task.Bytes = n
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// finishTask records the final status; err decides between completed,
// cancelled and error
func (s *Service) finishTask(ctx context.Context, task *model.SaveTask, err error) {
	s.tasksMutex.Lock()
	switch {
	case err == nil:
		task.Status = model.TaskStatusCompleted
	case ctx.Err() != nil:
		task.Status = model.TaskStatusCancelled
		task.LastError = ctx.Err().Error()
	default:
		task.Status = model.TaskStatusError
		task.LastError = api.Message(err)
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.SaveTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	snapshot := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&snapshot)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}

// progressWriter counts bytes and reports them at most every progressInterval
type progressWriter struct {
	w          io.Writer
	written    int64
	lastReport time.Time
	onProgress func(int64)
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	if now := time.Now(); now.Sub(p.lastReport) >= progressInterval {
		p.lastReport = now
		p.onProgress(p.written)
	}
	return n, err
}
