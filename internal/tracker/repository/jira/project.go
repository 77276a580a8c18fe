package jira

import (
	"context"
	"encoding/json"

	"jira-gateway/internal/model"
)

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := r.client.ListProjects(ctx)
	if err != nil {
		r.l.Errorf(ctx, "jira repository: failed to list projects: %v", err)
		return nil, err
	}

	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, model.Project{ID: p.ID, Key: p.Key, Name: p.Name})
	}
	return out, nil
}

func (r *implRepository) ListVersions(ctx context.Context, projectKey string) ([]json.RawMessage, error) {
	versions, err := r.client.ListProjectVersions(ctx, projectKey)
	if err != nil {
		r.l.Errorf(ctx, "jira repository: failed to list versions of %s: %v", projectKey, err)
		return nil, err
	}
	return nonNil(versions), nil
}

func (r *implRepository) ListComponents(ctx context.Context, projectKey string) ([]json.RawMessage, error) {
	components, err := r.client.ListProjectComponents(ctx, projectKey)
	if err != nil {
		r.l.Errorf(ctx, "jira repository: failed to list components of %s: %v", projectKey, err)
		return nil, err
	}
	return nonNil(components), nil
}

func nonNil(items []json.RawMessage) []json.RawMessage {
	if items == nil {
		return []json.RawMessage{}
	}
	return items
}
