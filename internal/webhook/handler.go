package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v72/github"

	"jira-gateway/internal/metrics"
	"jira-gateway/internal/model"
	"jira-gateway/internal/tracker"
	trackerHTTP "jira-gateway/internal/tracker/delivery/http"
	pkgResponse "jira-gateway/pkg/response"
)

// HandleGitHubWebhook turns a GitHub issue, pull request or push delivery into a new ticket.
// @Summary     GitHub webhook
// @Description Creates one tracker ticket per supported GitHub event. ping and unsupported events are acknowledged only.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event header string false "GitHub event name"
// @Success     200 {object} pkgResponse.Resp
// @Failure     400 {object} pkgResponse.Resp "Malformed payload"
// @Router      /webhook/github [post]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	source := string(model.SourceGitHub)

	// Read body
	body, err := readPayload(c)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read GitHub webhook body: %v", err)
		metrics.ObserveWebhook(source, "unknown", "rejected")
		writeReadError(c, err)
		return
	}

	// Get event type
	eventType := github.WebHookType(c.Request)
	if eventType == "" {
		eventType = h.githubParser.DetectEventType(body)
	}

	if eventType == GitHubEventPing {
		metrics.ObserveWebhook(source, eventType, statusPong)
		pkgResponse.OK(c, githubResp{Status: statusPong, Event: eventType})
		return
	}

	// Parse event
	event, err := h.githubParser.Parse(eventType, body)
	if errors.Is(err, ErrUnsupportedEvent) {
		h.l.Infof(ctx, "Unsupported GitHub event type: %q", eventType)
		metrics.ObserveWebhook(source, eventLabel(eventType), statusIgnored)
		pkgResponse.OK(c, githubResp{Status: statusIgnored, Event: eventType, Reason: "unsupported event type"})
		return
	}
	if errors.Is(err, ErrIgnoredEvent) {
		h.l.Infof(ctx, "Ignoring GitHub delivery: %v", err)
		metrics.ObserveWebhook(source, eventLabel(eventType), statusIgnored)
		pkgResponse.OK(c, githubResp{Status: statusIgnored, Event: eventType, Reason: err.Error()})
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse GitHub event: %v", err)
		metrics.ObserveWebhook(source, eventType, "rejected")
		pkgResponse.Error(c, fmt.Errorf("%w: %v", tracker.ErrMalformedPayload, err), nil)
		return
	}

	h.l.Infof(ctx, "GitHub %s/%s from %s", event.EventType, event.Action, event.Repository)

	output, err := h.trackerUC.CreateFromEvent(ctx, *event)
	if err != nil {
		h.l.Errorf(ctx, "trackerUC.CreateFromEvent: %v", err)
		metrics.ObserveWebhook(source, eventType, "failed")
		trackerHTTP.WriteError(c, err)
		return
	}

	metrics.ObserveWebhook(source, eventType, statusCreated)
	pkgResponse.OK(c, githubResp{
		Status: statusCreated,
		Event:  eventType,
		Issue: &createdIssueResp{
			ID:   output.Issue.ID,
			Key:  output.Issue.Key,
			Self: output.Issue.Self,
		},
	})
}

// HandleJiraWebhook acknowledges tracker deliveries. Events are logged, nothing else happens.
// @Summary     Jira webhook
// @Description Acknowledges any well-formed JSON payload from the tracker.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Success     200 {object} pkgResponse.Resp
// @Failure     400 {object} pkgResponse.Resp "Malformed payload"
// @Router      /webhook/jira [post]
func (h *Handler) HandleJiraWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	source := string(model.SourceJira)

	body, err := readPayload(c)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read Jira webhook body: %v", err)
		metrics.ObserveWebhook(source, "unknown", "rejected")
		writeReadError(c, err)
		return
	}

	event := h.jiraParser.Parse(body)
	h.l.Infof(ctx, "Jira webhook received: event=%q type=%q issue=%q", event.EventType, event.Action, event.IssueKey)
	metrics.ObserveWebhook(source, eventLabel(event.EventType), statusAcknowledged)

	pkgResponse.OK(c, jiraResp{
		Status:     statusAcknowledged,
		Event:      event.EventType,
		IssueKey:   event.IssueKey,
		ReceivedAt: pkgResponse.DateTime(event.ReceivedAt),
	})
}

// readPayload reads the body and rejects anything that is not well-formed JSON.
func readPayload(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", tracker.ErrMalformedPayload, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", tracker.ErrMalformedPayload)
	}
	return body, nil
}

func writeReadError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		pkgResponse.ErrorWithStatus(c, http.StatusRequestEntityTooLarge,
			fmt.Errorf("webhook payload exceeds %d bytes", tooLarge.Limit), nil)
		return
	}
	pkgResponse.Error(c, err, nil)
}

// eventLabel keeps metric cardinality bounded for free-form event names.
func eventLabel(event string) string {
	switch event {
	case "":
		return "unknown"
	case GitHubEventIssues, GitHubEventPullRequest, GitHubEventPush, GitHubEventPing:
		return event
	}
	if strings.HasPrefix(event, "jira:") {
		return event
	}
	return "other"
}
