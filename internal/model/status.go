package model

// TaskStatus is the lifecycle of a local save
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusSaving    TaskStatus = "saving" // bytes are being written to disk
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled" // ctx ended mid-transfer
	TaskStatusError     TaskStatus = "error"
)

func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive reports whether bytes are still flowing
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusSaving
}

// IsFinished reports whether the task reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	switch ts {
	case TaskStatusCompleted, TaskStatusCancelled, TaskStatusError:
		return true
	}
	return false
}

// Succeeded reports whether the file ended up on disk
func (ts TaskStatus) Succeeded() bool {
	return ts == TaskStatusCompleted
}
