package repository

import (
	"context"
	"encoding/json"

	"jira-gateway/internal/model"
)

// Repository is the tracker-side data source. Every method makes exactly one upstream call.
type Repository interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	SearchIssues(ctx context.Context, opt SearchIssuesOptions) ([]model.Issue, error)
	ListVersions(ctx context.Context, projectKey string) ([]json.RawMessage, error)
	ListComponents(ctx context.Context, projectKey string) ([]json.RawMessage, error)
	CreateIssue(ctx context.Context, opt CreateIssueOptions) (model.CreatedIssue, error)
}
