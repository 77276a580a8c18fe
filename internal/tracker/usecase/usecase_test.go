package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-gateway/internal/model"
	"jira-gateway/internal/tracker"
	"jira-gateway/internal/tracker/repository"
	"jira-gateway/internal/tracker/usecase"
	"jira-gateway/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockRepo struct {
	issues   []model.Issue
	projects []model.Project
	raw      []json.RawMessage
	created  model.CreatedIssue
	err      error

	searches []repository.SearchIssuesOptions
	creates  []repository.CreateIssueOptions
	rawKeys  []string
}

func (m *mockRepo) ListProjects(ctx context.Context) ([]model.Project, error) {
	return m.projects, m.err
}
func (m *mockRepo) SearchIssues(ctx context.Context, opt repository.SearchIssuesOptions) ([]model.Issue, error) {
	m.searches = append(m.searches, opt)
	return m.issues, m.err
}
func (m *mockRepo) ListVersions(ctx context.Context, projectKey string) ([]json.RawMessage, error) {
	m.rawKeys = append(m.rawKeys, projectKey)
	return m.raw, m.err
}
func (m *mockRepo) ListComponents(ctx context.Context, projectKey string) ([]json.RawMessage, error) {
	m.rawKeys = append(m.rawKeys, projectKey)
	return m.raw, m.err
}
func (m *mockRepo) CreateIssue(ctx context.Context, opt repository.CreateIssueOptions) (model.CreatedIssue, error) {
	m.creates = append(m.creates, opt)
	return m.created, m.err
}

func newUseCase(repo *mockRepo) tracker.UseCase {
	return usecase.New(repo, log.NewNop(), usecase.Config{
		ProjectKey:      "ECSA",
		MaxResults:      100,
		TicketIssueType: "Task",
	})
}

func keys(issues []model.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.Key)
	}
	return out
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestListIssues(t *testing.T) {
	for _, typ := range []model.IssueType{model.IssueTypeEpic, model.IssueTypeStory, model.IssueTypeTask, model.IssueTypeBug} {
		t.Run(string(typ), func(t *testing.T) {
			repo := &mockRepo{issues: []model.Issue{
				{Key: "ECSA-1", Type: "Epic"},
				{Key: "ECSA-2", Type: "Story"},
				{Key: "ECSA-3", Type: "Task"},
				{Key: "ECSA-4", Type: "Bug"},
			}}

			out, err := newUseCase(repo).ListIssues(context.Background(), tracker.ListIssuesInput{Type: typ})
			require.NoError(t, err)

			require.Len(t, repo.searches, 1)
			assert.Equal(t, `project = "ECSA" AND issuetype = "`+string(typ)+`"`, repo.searches[0].JQL)
			assert.Equal(t, 100, repo.searches[0].MaxResults)

			require.Len(t, out.Issues, 1)
			assert.Equal(t, string(typ), out.Issues[0].Type)
		})
	}
}

func TestListIssuesInvalidType(t *testing.T) {
	repo := &mockRepo{}
	_, err := newUseCase(repo).ListIssues(context.Background(), tracker.ListIssuesInput{Type: "Subtask"})
	assert.ErrorIs(t, err, tracker.ErrInvalidIssueType)
	assert.Empty(t, repo.searches)
}

func TestListIssuesByLabel(t *testing.T) {
	repo := &mockRepo{issues: []model.Issue{
		{Key: "ECSA-1", Labels: []string{"urgent"}},
		{Key: "ECSA-2", Labels: []string{"minor"}},
		{Key: "ECSA-3", Labels: []string{"urgent", "minor"}},
	}}

	out, err := newUseCase(repo).ListIssuesByLabel(context.Background(), "urgent")
	require.NoError(t, err)

	assert.Equal(t, []string{"ECSA-1", "ECSA-3"}, keys(out.Issues))
	require.Len(t, repo.searches, 1)
	assert.Equal(t, `project = "ECSA" AND labels = "urgent"`, repo.searches[0].JQL)
}

func TestListIssuesByComponent(t *testing.T) {
	repo := &mockRepo{issues: []model.Issue{
		{Key: "ECSA-1", Components: []string{"Backend"}},
		{Key: "ECSA-2", Components: []string{"Frontend"}},
		{Key: "ECSA-3"},
		{Key: "ECSA-4", Components: []string{"Frontend", "backend"}},
	}}

	out, err := newUseCase(repo).ListIssuesByComponent(context.Background(), "Backend")
	require.NoError(t, err)

	assert.Equal(t, []string{"ECSA-1", "ECSA-4"}, keys(out.Issues))
	assert.Equal(t, `project = "ECSA" AND component = "Backend"`, repo.searches[0].JQL)
}

func TestFilterInjectionIsEscaped(t *testing.T) {
	repo := &mockRepo{}
	_, err := newUseCase(repo).ListIssuesByLabel(context.Background(), `x" OR project != "ECSA`)
	require.NoError(t, err)

	assert.Equal(t, `project = "ECSA" AND labels = "x\" OR project != \"ECSA"`, repo.searches[0].JQL)
}

func TestFilterRejected(t *testing.T) {
	for _, bad := range []string{"", "   ", "line\nbreak", strings.Repeat("a", 256)} {
		repo := &mockRepo{}
		_, err := newUseCase(repo).ListIssuesByComponent(context.Background(), bad)
		assert.ErrorIs(t, err, tracker.ErrInvalidFilter)
		assert.Empty(t, repo.searches, "no upstream call for %q", bad)
	}
}

func TestUpstreamErrorPropagates(t *testing.T) {
	upErr := &tracker.UpstreamError{StatusCode: 503, Body: []byte("down")}
	repo := &mockRepo{err: upErr}
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.ListProjects(ctx)
	assert.ErrorIs(t, err, upErr)
	_, err = uc.ListVersions(ctx)
	assert.ErrorIs(t, err, upErr)
	_, err = uc.ListLabels(ctx)
	assert.ErrorIs(t, err, upErr)
	_, err = uc.ListIssuesByLabel(ctx, "urgent")

	var got *tracker.UpstreamError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 503, got.StatusCode)
}

func TestListRawUsesConfiguredProject(t *testing.T) {
	repo := &mockRepo{raw: []json.RawMessage{json.RawMessage(`{"name":"v1"}`)}}
	uc := newUseCase(repo)

	versions, err := uc.ListVersions(context.Background())
	require.NoError(t, err)
	components, err := uc.ListComponents(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"ECSA", "ECSA"}, repo.rawKeys)
	assert.Equal(t, `{"name":"v1"}`, string(versions.Items[0]))
	assert.Len(t, components.Items, 1)
}

func TestListLabels(t *testing.T) {
	repo := &mockRepo{issues: []model.Issue{
		{Key: "ECSA-1", Labels: []string{"urgent", "api"}},
		{Key: "ECSA-2"},
		{Key: "ECSA-3", Labels: []string{"api", "minor"}},
	}}

	out, err := newUseCase(repo).ListLabels(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"urgent", "api", "minor"}, out.Labels)
	assert.Equal(t, []string{"labels"}, repo.searches[0].Fields)
	assert.Equal(t, `project = "ECSA"`, repo.searches[0].JQL)
}

func TestCreateFromEvent(t *testing.T) {
	repo := &mockRepo{created: model.CreatedIssue{ID: "1", Key: "ECSA-9"}}

	out, err := newUseCase(repo).CreateFromEvent(context.Background(), model.WebhookEvent{
		Source:     model.SourceGitHub,
		EventType:  "issues",
		Action:     "opened",
		Repository: "r",
		Title:      "t",
		Author:     "octocat",
		URL:        "https://github.com/r/issues/1",
		Number:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, "ECSA-9", out.Issue.Key)

	require.Len(t, repo.creates, 1)
	opt := repo.creates[0]
	assert.Contains(t, opt.Summary, "r")
	assert.Contains(t, opt.Summary, "t")
	assert.Equal(t, "[r] t", opt.Summary)
	assert.Equal(t, "ECSA", opt.ProjectKey)
	assert.Equal(t, "Task", opt.IssueType)
	assert.Equal(t, []string{"github"}, opt.Labels)
	assert.Contains(t, opt.Description, "issues (opened)")
	assert.Contains(t, opt.Description, "Author: octocat")
	assert.Contains(t, opt.Description, "#1")
}

func TestCreateFromEventTruncatesSummary(t *testing.T) {
	repo := &mockRepo{}
	_, err := newUseCase(repo).CreateFromEvent(context.Background(), model.WebhookEvent{
		Repository: "acme/api",
		Title:      strings.Repeat("long ", 100) + "\nsecond line",
	})
	require.NoError(t, err)

	summary := repo.creates[0].Summary
	assert.LessOrEqual(t, len([]rune(summary)), 255)
	assert.True(t, strings.HasPrefix(summary, "[acme/api] long"))
	assert.NotContains(t, summary, "second line")
}

func TestCreateFromEventMalformed(t *testing.T) {
	for _, ev := range []model.WebhookEvent{
		{Repository: "r"},
		{Title: "t"},
		{Repository: " ", Title: "\n"},
	} {
		repo := &mockRepo{}
		_, err := newUseCase(repo).CreateFromEvent(context.Background(), ev)
		assert.ErrorIs(t, err, tracker.ErrMalformedPayload)
		assert.Empty(t, repo.creates)
	}
}
