package webhook

import "jira-gateway/pkg/response"

// Webhook bodies larger than this are rejected. GitHub caps deliveries at 25 MB.
const maxPayloadBytes = 25 << 20

const (
	statusCreated      = "created"
	statusIgnored      = "ignored"
	statusPong         = "pong"
	statusAcknowledged = "acknowledged"
)

// createdIssueResp identifies the ticket opened for a GitHub delivery.
type createdIssueResp struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

type githubResp struct {
	Status string            `json:"status"`
	Event  string            `json:"event,omitempty"`
	Reason string            `json:"reason,omitempty"`
	Issue  *createdIssueResp `json:"issue,omitempty"`
}

type jiraResp struct {
	Status     string            `json:"status"`
	Event      string            `json:"event,omitempty"`
	IssueKey   string            `json:"issue_key,omitempty"`
	ReceivedAt response.DateTime `json:"received_at"`
}
