package jira

import (
	"context"

	"jira-gateway/internal/model"
	"jira-gateway/internal/tracker/repository"
)

// DefaultSearchFields are the fields needed to fill model.Issue.
var DefaultSearchFields = []string{
	"summary",
	"status",
	"issuetype",
	"assignee",
	"components",
	"labels",
	"fixVersions",
}

func (r *implRepository) SearchIssues(ctx context.Context, opt repository.SearchIssuesOptions) ([]model.Issue, error) {
	fields := opt.Fields
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}

	resp, err := r.client.Search(ctx, SearchRequest{
		JQL:        opt.JQL,
		Fields:     fields,
		MaxResults: opt.MaxResults,
	})
	if err != nil {
		r.l.Errorf(ctx, "jira repository: search %q failed: %v", opt.JQL, err)
		return nil, err
	}
	if !resp.IsLast && resp.NextPageToken != "" {
		r.l.Warnf(ctx, "jira repository: search %q truncated at %d issues", opt.JQL, len(resp.Issues))
	}

	issues := make([]model.Issue, 0, len(resp.Issues))
	for _, is := range resp.Issues {
		issues = append(issues, toIssue(is))
	}
	return issues, nil
}

func (r *implRepository) CreateIssue(ctx context.Context, opt repository.CreateIssueOptions) (model.CreatedIssue, error) {
	req := CreateIssueRequest{
		Fields: CreateIssueFields{
			Project:     KeyRef{Key: opt.ProjectKey},
			Summary:     opt.Summary,
			Description: NewDoc(opt.Description),
			IssueType:   Named{Name: opt.IssueType},
			Labels:      opt.Labels,
		},
	}

	created, err := r.client.CreateIssue(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "jira repository: failed to create issue in %s: %v", opt.ProjectKey, err)
		return model.CreatedIssue{}, err
	}

	return model.CreatedIssue{ID: created.ID, Key: created.Key, Self: created.Self}, nil
}

func toIssue(is Issue) model.Issue {
	out := model.Issue{
		ID:      is.ID,
		Key:     is.Key,
		Summary: is.Fields.Summary,
		Labels:  is.Fields.Labels,
	}
	if is.Fields.Status != nil {
		out.Status = is.Fields.Status.Name
	}
	if is.Fields.IssueType != nil {
		out.Type = is.Fields.IssueType.Name
	}
	if is.Fields.Assignee != nil {
		out.Assignee = is.Fields.Assignee.DisplayName
	}
	out.Components = names(is.Fields.Components)
	out.FixVersions = names(is.Fields.FixVersions)
	return out
}

func names(refs []Named) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}
