package model

import "time"

// WebhookSource represents the platform that sent a webhook.
type WebhookSource string

const (
	SourceGitHub WebhookSource = "github"
	SourceJira   WebhookSource = "jira"
)

// WebhookEvent is the normalized form of an inbound webhook payload.
type WebhookEvent struct {
	Source      WebhookSource // Platform source
	EventType   string        // issues, pull_request, push, jira:issue_updated, ...
	Action      string        // opened, closed, merged, ...
	Repository  string        // owner/name for GitHub events
	Title       string        // Issue/PR title or first commit line
	Description string        // Body text, if any
	Author      string        // Event author
	URL         string        // Link back to the originating object
	Number      int           // Issue/PR number (if applicable)
	IssueKey    string        // Tracker issue key (Jira events)
	ReceivedAt  time.Time     // When the webhook was received
}
