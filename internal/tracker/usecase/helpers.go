package usecase

import (
	"slices"
	"strings"

	"jira-gateway/internal/model"
	"jira-gateway/pkg/jql"
)

func (uc *implUseCase) projectQuery() *jql.Query {
	return jql.New().Eq("project", uc.cfg.ProjectKey)
}

func isSupportedType(t model.IssueType) bool {
	switch t {
	case model.IssueTypeEpic, model.IssueTypeStory, model.IssueTypeTask, model.IssueTypeBug:
		return true
	}
	return false
}

func containsFold(values []string, want string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, want)
	})
}

// truncateRunes cuts s to at most n runes, marking the cut with an ellipsis.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
