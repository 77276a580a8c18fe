package webhook

import (
	"jira-gateway/internal/tracker"
	pkgLog "jira-gateway/pkg/log"
)

// Handler serves the inbound webhook endpoints.
type Handler struct {
	trackerUC    tracker.UseCase
	githubParser *GitHubWebhookParser
	jiraParser   *JiraWebhookParser
	l            pkgLog.Logger
}

func NewHandler(
	trackerUC tracker.UseCase,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		trackerUC:    trackerUC,
		githubParser: NewGitHubParser(),
		jiraParser:   NewJiraParser(),
		l:            l,
	}
}
