package http

import (
	"encoding/json"

	"jira-gateway/internal/model"
	"jira-gateway/internal/tracker"
)

// --- Response DTOs ---

type projectResp struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func newProjectsResp(out tracker.ListProjectsOutput) []projectResp {
	items := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		items[i] = projectResp{Key: p.Key, Name: p.Name}
	}
	return items
}

type issueResp struct {
	Key         string   `json:"key"`
	Summary     string   `json:"summary"`
	Status      string   `json:"status"`
	Type        string   `json:"type,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
	Components  []string `json:"components,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	FixVersions []string `json:"fix_versions,omitempty"`
}

func newIssueResp(is model.Issue) issueResp {
	return issueResp{
		Key:         is.Key,
		Summary:     is.Summary,
		Status:      is.Status,
		Type:        is.Type,
		Assignee:    is.Assignee,
		Components:  is.Components,
		Labels:      is.Labels,
		FixVersions: is.FixVersions,
	}
}

func newIssuesResp(out tracker.ListIssuesOutput) []issueResp {
	items := make([]issueResp, len(out.Issues))
	for i, is := range out.Issues {
		items[i] = newIssueResp(is)
	}
	return items
}

func newRawResp(out tracker.RawListOutput) []json.RawMessage {
	if out.Items == nil {
		return []json.RawMessage{}
	}
	return out.Items
}

func newLabelsResp(out tracker.ListLabelsOutput) []string {
	if out.Labels == nil {
		return []string{}
	}
	return out.Labels
}
