package hosting

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey means the server was started without a hosting API key.
	ErrMissingAPIKey = errors.New("hosting API key is not configured")

	// ErrUnexpectedResponse means the hosting API answered 2xx but the body
	// matched none of the known response shapes.
	ErrUnexpectedResponse = errors.New("unexpected hosting API response")
)

// UpstreamError is a failed call to the hosting API: either the transport
// failed outright or the API answered with a non-2xx status. Body carries the
// upstream error body verbatim so the handler can attach it as details.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hosting API request failed: %v", e.Err)
	}
	return fmt.Sprintf("hosting API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
