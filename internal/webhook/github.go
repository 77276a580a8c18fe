package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/go-github/v72/github"

	"jira-gateway/internal/model"
)

// GitHub event names as sent in X-GitHub-Event.
const (
	GitHubEventPing        = "ping"
	GitHubEventIssues      = "issues"
	GitHubEventPullRequest = "pull_request"
	GitHubEventPush        = "push"
)

var (
	// ErrUnsupportedEvent marks a well-formed delivery the gateway does not act on.
	ErrUnsupportedEvent = errors.New("unsupported event type")
	// ErrIgnoredEvent marks a supported event whose action does not open a ticket.
	ErrIgnoredEvent = errors.New("event does not open a ticket")
)

// Actions that open a ticket. Everything else (edited, labeled, synchronize, ...) is acknowledged only.
var (
	ticketIssueActions       = []string{"opened", "reopened"}
	ticketPullRequestActions = []string{"opened", "reopened", "merged"}
)

// GitHubWebhookParser parses GitHub webhook payloads
type GitHubWebhookParser struct{}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{}
}

// DetectEventType guesses the event name from the payload shape, for deliveries
// relayed without the X-GitHub-Event header.
func (p *GitHubWebhookParser) DetectEventType(payload []byte) string {
	var probe struct {
		Zen         *string         `json:"zen"`
		PullRequest json.RawMessage `json:"pull_request"`
		Issue       json.RawMessage `json:"issue"`
		HeadCommit  json.RawMessage `json:"head_commit"`
		Commits     json.RawMessage `json:"commits"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return ""
	}

	switch {
	case probe.Zen != nil:
		return GitHubEventPing
	case isObject(probe.PullRequest):
		return GitHubEventPullRequest
	case isObject(probe.Issue):
		return GitHubEventIssues
	case isObject(probe.HeadCommit) || len(probe.Commits) > 0:
		return GitHubEventPush
	}
	return ""
}

// Parse normalizes a supported event. Unknown event types yield ErrUnsupportedEvent.
func (p *GitHubWebhookParser) Parse(eventType string, payload []byte) (*model.WebhookEvent, error) {
	switch eventType {
	case GitHubEventIssues, GitHubEventPullRequest, GitHubEventPush:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEvent, eventType)
	}

	raw, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s event: %w", eventType, err)
	}

	switch event := raw.(type) {
	case *github.IssuesEvent:
		ev := p.fromIssueEvent(event)
		if !slices.Contains(ticketIssueActions, ev.Action) {
			return nil, fmt.Errorf("%w: %s %q", ErrIgnoredEvent, eventType, ev.Action)
		}
		return ev, nil
	case *github.PullRequestEvent:
		ev := p.fromPullRequestEvent(event)
		if !slices.Contains(ticketPullRequestActions, ev.Action) {
			return nil, fmt.Errorf("%w: %s %q", ErrIgnoredEvent, eventType, ev.Action)
		}
		return ev, nil
	case *github.PushEvent:
		// Branch and tag deletions arrive with deleted=true and no head commit.
		if event.GetDeleted() || event.HeadCommit == nil {
			return nil, fmt.Errorf("%w: push to %q without head commit", ErrIgnoredEvent, event.GetRef())
		}
		return p.fromPushEvent(event), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEvent, eventType)
	}
}

func (p *GitHubWebhookParser) fromIssueEvent(event *github.IssuesEvent) *model.WebhookEvent {
	issue := event.GetIssue()
	return &model.WebhookEvent{
		Source:      model.SourceGitHub,
		EventType:   GitHubEventIssues,
		Action:      event.GetAction(),
		Repository:  repoName(event.GetRepo()),
		Title:       issue.GetTitle(),
		Description: issue.GetBody(),
		Author:      issue.GetUser().GetLogin(),
		URL:         issue.GetHTMLURL(),
		Number:      issue.GetNumber(),
		ReceivedAt:  time.Now(),
	}
}

func (p *GitHubWebhookParser) fromPullRequestEvent(event *github.PullRequestEvent) *model.WebhookEvent {
	pr := event.GetPullRequest()

	// Determine action (merged takes precedence over closed)
	action := event.GetAction()
	if action == "closed" && pr.GetMerged() {
		action = "merged"
	}

	number := event.GetNumber()
	if number == 0 {
		number = pr.GetNumber()
	}

	return &model.WebhookEvent{
		Source:      model.SourceGitHub,
		EventType:   GitHubEventPullRequest,
		Action:      action,
		Repository:  repoName(event.GetRepo()),
		Title:       pr.GetTitle(),
		Description: pr.GetBody(),
		Author:      pr.GetUser().GetLogin(),
		URL:         pr.GetHTMLURL(),
		Number:      number,
		ReceivedAt:  time.Now(),
	}
}

func (p *GitHubWebhookParser) fromPushEvent(event *github.PushEvent) *model.WebhookEvent {
	commit := event.GetHeadCommit()

	// Extract branch name from ref (refs/heads/main → main)
	branch := strings.TrimPrefix(event.GetRef(), "refs/heads/")

	repo := event.GetRepo().GetFullName()
	if repo == "" {
		repo = event.GetRepo().GetName()
	}

	title, body, _ := strings.Cut(commit.GetMessage(), "\n")
	if branch != "" {
		body = strings.TrimSpace("Branch: " + branch + "\n" + strings.TrimSpace(body))
	}

	return &model.WebhookEvent{
		Source:      model.SourceGitHub,
		EventType:   GitHubEventPush,
		Repository:  repo,
		Title:       title,
		Description: body,
		Author:      commit.GetAuthor().GetName(),
		URL:         commit.GetURL(),
		ReceivedAt:  time.Now(),
	}
}

func repoName(repo *github.Repository) string {
	if name := repo.GetFullName(); name != "" {
		return name
	}
	return repo.GetName()
}

func isObject(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[0] == '{'
}
