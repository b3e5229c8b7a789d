package content

import "fmt"

// Error represents a failed remote content call. Message carries the remote
// service's message when the response body supplied one, otherwise a generic
// status-based description.
type Error struct {
	Endpoint   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content request %s failed: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("content request %s failed: %s", e.Endpoint, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
