package domain

import "fmt"

// Upstream failure categories surfaced to the client when the media provider
// cannot be reached or rejects a request.
const (
	UpstreamAborted        = "aborted"
	UpstreamInvalidRequest = "invalid-request"
	UpstreamServerError    = "server-error"
	UpstreamNetworkError   = "network-error"
)

// UpstreamError wraps a media-provider failure with a user-facing category.
// The wrapped cause is logged internally and never shown to the client.
type UpstreamError struct {
	Category string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("media provider failure (%s): %v", e.Category, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
