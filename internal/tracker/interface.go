package tracker

import (
	"context"

	"jira-gateway/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Read-only project queries
	ListProjects(ctx context.Context) (ListProjectsOutput, error)
	ListIssues(ctx context.Context, input ListIssuesInput) (ListIssuesOutput, error)
	ListVersions(ctx context.Context) (RawListOutput, error)
	ListComponents(ctx context.Context) (RawListOutput, error)
	ListLabels(ctx context.Context) (ListLabelsOutput, error)
	ListIssuesByComponent(ctx context.Context, component string) (ListIssuesOutput, error)
	ListIssuesByLabel(ctx context.Context, label string) (ListIssuesOutput, error)

	// CreateFromEvent opens a ticket describing a source-control event.
	CreateFromEvent(ctx context.Context, event model.WebhookEvent) (CreateFromEventOutput, error)
}
