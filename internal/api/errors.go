package api

import (
	"errors"
	"fmt"
)

// Fallback messages used when the server gives no error text
const (
	MsgRequestFailed  = "request failed"
	MsgDownloadFailed = "download failed"
	MsgUploadFailed   = "upload failed"
	MsgCleanupFailed  = "cleanup failed"
	MsgCleanupDone    = "temporary file cleaned up"
)

var (
	// ErrUnknownOperation is returned for kinds without an endpoint
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMalformedResponse is returned when a JSON body cannot be decoded
	ErrMalformedResponse = errors.New("malformed server response")
)

// APIError is a non-2xx response from the server.
// Message holds the server-supplied error or a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Message extracts the user-facing message from err: the server text for
// APIError, the error string otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
