package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps network-level failures: DNS, connection refused, timeouts.
	ErrTransport = errors.New("upstream transport failure")
	// ErrDecode wraps responses whose body is not the expected JSON.
	ErrDecode = errors.New("upstream response decode failure")
)

// Error is an upstream rejection: a non-2xx status together with the body text.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("upstream %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// StatusCode extracts the upstream status from err, or 0 when err is not a rejection.
func StatusCode(err error) int {
	var rejected *Error
	if errors.As(err, &rejected) {
		return rejected.StatusCode
	}
	return 0
}
