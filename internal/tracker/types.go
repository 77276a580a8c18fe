package tracker

import (
	"encoding/json"

	"jira-gateway/internal/model"
)

// --- UseCase Inputs ---

type ListIssuesInput struct {
	Type model.IssueType
}

// --- UseCase Outputs ---

type ListProjectsOutput struct {
	Projects []model.Project
}

type ListIssuesOutput struct {
	Issues []model.Issue
}

// RawListOutput carries upstream array elements untouched.
type RawListOutput struct {
	Items []json.RawMessage
}

type ListLabelsOutput struct {
	Labels []string
}

type CreateFromEventOutput struct {
	Issue model.CreatedIssue
}
