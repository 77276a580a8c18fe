package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIssueType = errors.New("unsupported issue type")
	ErrInvalidFilter    = errors.New("invalid filter value")
	ErrMalformedPayload = errors.New("malformed webhook payload")

	// ErrUpstreamUnavailable wraps transport failures and undecodable tracker responses.
	ErrUpstreamUnavailable = errors.New("issue tracker unavailable")
)

// UpstreamError is a non-2xx answer from the tracker. Delivery relays it verbatim.
type UpstreamError struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tracker responded %d: %s", e.StatusCode, truncate(string(e.Body), 200))
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
