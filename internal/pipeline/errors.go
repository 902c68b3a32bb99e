// internal/pipeline/errors.go
package pipeline

import (
    "errors"
    "fmt"
)

// ErrTimedOut replaces a context deadline error so callers can show a
// distinct "still running" message instead of a raw transport error.
var ErrTimedOut = errors.New("pipeline request timed out")

// APIError is a non-2xx response from the pipeline backend, normalized to
// the body's detail field when one is present.
type APIError struct {
    StatusCode int
    Detail     string
}

func (e *APIError) Error() string {
    if e.Detail != "" {
        return e.Detail
    }
    return fmt.Sprintf("HTTP %d", e.StatusCode)
}
