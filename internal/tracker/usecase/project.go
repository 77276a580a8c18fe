package usecase

import (
	"context"

	"jira-gateway/internal/tracker"
	"jira-gateway/internal/tracker/repository"
)

// ListProjects returns every project visible to the configured account.
func (uc *implUseCase) ListProjects(ctx context.Context) (tracker.ListProjectsOutput, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListProjects: %v", err)
		return tracker.ListProjectsOutput{}, err
	}
	return tracker.ListProjectsOutput{Projects: projects}, nil
}

// ListVersions returns the configured project's versions as sent by the tracker.
func (uc *implUseCase) ListVersions(ctx context.Context) (tracker.RawListOutput, error) {
	items, err := uc.repo.ListVersions(ctx, uc.cfg.ProjectKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListVersions: %v", err)
		return tracker.RawListOutput{}, err
	}
	return tracker.RawListOutput{Items: items}, nil
}

// ListComponents returns the configured project's components as sent by the tracker.
func (uc *implUseCase) ListComponents(ctx context.Context) (tracker.RawListOutput, error) {
	items, err := uc.repo.ListComponents(ctx, uc.cfg.ProjectKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListComponents: %v", err)
		return tracker.RawListOutput{}, err
	}
	return tracker.RawListOutput{Items: items}, nil
}

// ListLabels returns the distinct labels used in the project, in first-seen order.
func (uc *implUseCase) ListLabels(ctx context.Context) (tracker.ListLabelsOutput, error) {
	query, err := uc.projectQuery().String()
	if err != nil {
		return tracker.ListLabelsOutput{}, err
	}

	issues, err := uc.repo.SearchIssues(ctx, repository.SearchIssuesOptions{
		JQL:        query,
		Fields:     []string{"labels"},
		MaxResults: uc.cfg.MaxResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLabels SearchIssues: %v", err)
		return tracker.ListLabelsOutput{}, err
	}

	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, is := range issues {
		for _, label := range is.Labels {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	return tracker.ListLabelsOutput{Labels: labels}, nil
}
