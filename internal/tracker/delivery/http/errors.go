package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jira-gateway/internal/tracker"
	"jira-gateway/pkg/response"
)

// WriteError translates use-case errors into HTTP responses. Tracker answers
// are relayed with their original status and body.
func WriteError(c *gin.Context, err error) {
	var upErr *tracker.UpstreamError
	switch {
	case errors.As(err, &upErr):
		response.Raw(c, upErr.StatusCode, upErr.ContentType, upErr.Body)
	case errors.Is(err, tracker.ErrInvalidIssueType),
		errors.Is(err, tracker.ErrInvalidFilter),
		errors.Is(err, tracker.ErrMalformedPayload):
		response.Error(c, err, nil)
	case errors.Is(err, tracker.ErrUpstreamUnavailable):
		response.BadGateway(c, tracker.ErrUpstreamUnavailable)
	default:
		response.InternalError(c, err)
	}
}
