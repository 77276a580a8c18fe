package webhook

import (
	"encoding/json"
	"time"

	"jira-gateway/internal/model"
)

// JiraWebhookParser parses webhooks sent by the tracker itself.
type JiraWebhookParser struct{}

func NewJiraParser() *JiraWebhookParser {
	return &JiraWebhookParser{}
}

// jiraPayload covers the common envelope of jira:issue_* and comment_* events.
type jiraPayload struct {
	WebhookEvent       string `json:"webhookEvent"`
	IssueEventTypeName string `json:"issue_event_type_name"`
	User               *struct {
		DisplayName string `json:"displayName"`
	} `json:"user"`
	Issue *struct {
		Key    string `json:"key"`
		Self   string `json:"self"`
		Fields struct {
			Summary string `json:"summary"`
		} `json:"fields"`
	} `json:"issue"`
}

// Parse extracts what is worth logging from a well-formed JSON payload.
// Shapes other than the issue envelope produce an event with empty fields.
func (p *JiraWebhookParser) Parse(payload []byte) *model.WebhookEvent {
	var body jiraPayload
	_ = json.Unmarshal(payload, &body)

	event := &model.WebhookEvent{
		Source:     model.SourceJira,
		EventType:  body.WebhookEvent,
		Action:     body.IssueEventTypeName,
		ReceivedAt: time.Now(),
	}
	if body.User != nil {
		event.Author = body.User.DisplayName
	}
	if body.Issue != nil {
		event.IssueKey = body.Issue.Key
		event.Title = body.Issue.Fields.Summary
		event.URL = body.Issue.Self
	}
	return event
}
