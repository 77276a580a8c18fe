package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"jira-gateway/internal/model"
	"jira-gateway/internal/tracker"
	"jira-gateway/internal/tracker/repository"
)

// ListIssues returns the project's issues of one type.
func (uc *implUseCase) ListIssues(ctx context.Context, input tracker.ListIssuesInput) (tracker.ListIssuesOutput, error) {
	if !isSupportedType(input.Type) {
		return tracker.ListIssuesOutput{}, fmt.Errorf("%w: %q", tracker.ErrInvalidIssueType, input.Type)
	}

	return uc.search(ctx, "issuetype", string(input.Type), func(is model.Issue) bool {
		// Hits without a type field are trusted to match the query.
		return is.Type == "" || strings.EqualFold(is.Type, string(input.Type))
	})
}

// ListIssuesByComponent returns the project's issues that belong to component.
func (uc *implUseCase) ListIssuesByComponent(ctx context.Context, component string) (tracker.ListIssuesOutput, error) {
	return uc.search(ctx, "component", component, func(is model.Issue) bool {
		// Jira matches component names case-insensitively.
		return containsFold(is.Components, component)
	})
}

// ListIssuesByLabel returns the project's issues tagged with label.
func (uc *implUseCase) ListIssuesByLabel(ctx context.Context, label string) (tracker.ListIssuesOutput, error) {
	return uc.search(ctx, "labels", label, func(is model.Issue) bool {
		return slices.Contains(is.Labels, label)
	})
}

// search runs `project = P AND field = value` and keeps the hits accepted by match,
// preserving upstream order.
func (uc *implUseCase) search(ctx context.Context, field, value string, match func(model.Issue) bool) (tracker.ListIssuesOutput, error) {
	query, err := uc.projectQuery().Eq(field, value).String()
	if err != nil {
		return tracker.ListIssuesOutput{}, fmt.Errorf("%w: %v", tracker.ErrInvalidFilter, err)
	}

	issues, err := uc.repo.SearchIssues(ctx, repository.SearchIssuesOptions{
		JQL:        query,
		MaxResults: uc.cfg.MaxResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.search %s SearchIssues: %v", field, err)
		return tracker.ListIssuesOutput{}, err
	}

	matched := make([]model.Issue, 0, len(issues))
	for _, is := range issues {
		if match(is) {
			matched = append(matched, is)
		}
	}
	if dropped := len(issues) - len(matched); dropped > 0 {
		uc.l.Warnf(ctx, "uc.search %s=%q: dropped %d non-matching issues", field, value, dropped)
	}

	return tracker.ListIssuesOutput{Issues: matched}, nil
}
