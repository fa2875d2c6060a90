package arxiv

import (
	"errors"
	"fmt"
)

// Common errors returned by the arXiv client.
var (
	// ErrEmptyQuery indicates a blank search query.
	ErrEmptyQuery = errors.New("arXiv query must be non-empty")

	// ErrRateLimited indicates the upstream rate limit was exceeded.
	ErrRateLimited = errors.New("arXiv rate limit exceeded")

	// ErrNetwork indicates a connectivity problem reaching arXiv.
	ErrNetwork = errors.New("network error communicating with arXiv")

	// ErrInvalidResponse indicates an unparseable API payload.
	ErrInvalidResponse = errors.New("invalid response from arXiv")
)

// HTTPError represents a non-200 response from the arXiv API that is not a
// rate limit.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("arXiv API error: HTTP %d", e.StatusCode)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 429
}
