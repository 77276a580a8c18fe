package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trackerHTTP "jira-gateway/internal/tracker/delivery/http"
	"jira-gateway/internal/tracker/repository/jira"
	"jira-gateway/internal/tracker/usecase"
	"jira-gateway/pkg/log"
)

// stubTracker is a fake Jira that ignores the JQL filter and always returns mixed fixtures,
// so local filtering is exercised.
type stubTracker struct {
	calls   atomic.Int32
	lastJQL atomic.Value
	status  int
}

const mixedIssues = `{"isLast":true,"issues":[
	{"id":"1","key":"ECSA-1","fields":{"summary":"one","status":{"name":"To Do"},"issuetype":{"name":"Bug"},"labels":["urgent"],"components":[{"name":"API"}]}},
	{"id":"2","key":"ECSA-2","fields":{"summary":"two","status":{"name":"Done"},"issuetype":{"name":"Epic"},"labels":["minor"],"components":[{"name":"Web"}]}},
	{"id":"3","key":"ECSA-3","fields":{"summary":"three","status":{"name":"In Progress"},"issuetype":{"name":"Bug"},"labels":["urgent","minor"],"components":[{"name":"Web"},{"name":"API"}]}}
]}`

func (s *stubTracker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)
	if s.status != 0 {
		w.Header().Set("Content-Type", "application/json;charset=UTF-8")
		w.WriteHeader(s.status)
		w.Write([]byte(`{"errorMessages":["upstream says no"],"errors":{}}`))
		return
	}

	switch r.URL.Path {
	case "/rest/api/3/project":
		w.Write([]byte(`[{"id":"10","key":"ECSA","name":"Ecommerce","projectTypeKey":"software"}]`))
	case "/rest/api/3/search/jql":
		s.lastJQL.Store(r.URL.Query().Get("jql"))
		w.Write([]byte(mixedIssues))
	case "/rest/api/3/project/ECSA/versions":
		w.Write([]byte(`[{"self":"https://x/version/1","id":"1","name":"v1.0","archived":false,"released":true}]`))
	case "/rest/api/3/project/ECSA/components":
		w.Write([]byte(`[{"id":"7","name":"API","description":"Public API"}]`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func setup(t *testing.T, stub *stubTracker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := httptest.NewServer(stub)
	t.Cleanup(ts.Close)

	l := log.NewNop()
	repo := jira.New(jira.NewClient(ts.URL, "bot@example.com", "token", ts.Client()), l)
	uc := usecase.New(repo, l, usecase.Config{ProjectKey: "ECSA", MaxResults: 100, TicketIssueType: "Task"})

	r := gin.New()
	r.UseRawPath = true
	trackerHTTP.RegisterRoutes(r, trackerHTTP.New(l, uc))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

type issue struct {
	Key     string `json:"key"`
	Summary string `json:"summary"`
	Status  string `json:"status"`
	Type    string `json:"type"`
}

func decodeIssues(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var issues []issue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issues))
	keys := make([]string, 0, len(issues))
	for _, is := range issues {
		keys = append(keys, is.Key)
	}
	return keys
}

func TestListIssuesByLabel(t *testing.T) {
	stub := &stubTracker{}
	r := setup(t, stub)

	w := get(r, "/issues/label/urgent")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"ECSA-1", "ECSA-3"}, decodeIssues(t, w))
	assert.Equal(t, int32(1), stub.calls.Load())
	assert.Equal(t, `project = "ECSA" AND labels = "urgent"`, stub.lastJQL.Load())
}

func TestListIssuesByComponent(t *testing.T) {
	stub := &stubTracker{}
	r := setup(t, stub)

	w := get(r, "/issues/component/Web")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"ECSA-2", "ECSA-3"}, decodeIssues(t, w))
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestListIssuesByLabelEscapesInjection(t *testing.T) {
	stub := &stubTracker{}
	r := setup(t, stub)

	w := get(r, "/issues/label/"+url.PathEscape(`x" OR project != "ECSA`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeIssues(t, w))
	assert.Equal(t, `project = "ECSA" AND labels = "x\" OR project != \"ECSA"`, stub.lastJQL.Load())
}

func TestListIssuesByLabelRejectsControlChars(t *testing.T) {
	stub := &stubTracker{}
	r := setup(t, stub)

	w := get(r, "/issues/label/"+url.PathEscape("a\nb"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int32(0), stub.calls.Load())
}

func TestListIssuesByType(t *testing.T) {
	tests := []struct {
		path string
		typ  string
		want []string
	}{
		{"/bugs", "Bug", []string{"ECSA-1", "ECSA-3"}},
		{"/epics", "Epic", []string{"ECSA-2"}},
		{"/stories", "Story", []string{}},
		{"/tasks", "Task", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			stub := &stubTracker{}
			r := setup(t, stub)

			w := get(r, tt.path)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, decodeIssues(t, w))
			assert.Equal(t, int32(1), stub.calls.Load())
			assert.Equal(t, `project = "ECSA" AND issuetype = "`+tt.typ+`"`, stub.lastJQL.Load())
		})
	}
}

func TestListIssuesResponseShape(t *testing.T) {
	r := setup(t, &stubTracker{})

	w := get(r, "/bugs")

	var issues []issue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issues))
	require.Len(t, issues, 2)
	assert.Equal(t, issue{Key: "ECSA-1", Summary: "one", Status: "To Do", Type: "Bug"}, issues[0])
}

func TestListProjects(t *testing.T) {
	r := setup(t, &stubTracker{})

	w := get(r, "/projects")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"key":"ECSA","name":"Ecommerce"}]`, w.Body.String())
}

func TestListRawMetadata(t *testing.T) {
	r := setup(t, &stubTracker{})

	w := get(r, "/versions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"self":"https://x/version/1","id":"1","name":"v1.0","archived":false,"released":true}]`, w.Body.String())

	w = get(r, "/components")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"7","name":"API","description":"Public API"}]`, w.Body.String())
}

func TestListLabels(t *testing.T) {
	r := setup(t, &stubTracker{})

	w := get(r, "/labels")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["urgent","minor"]`, w.Body.String())
}

func TestUpstreamStatusPassthrough(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		for _, path := range []string{"/projects", "/epics", "/versions", "/components", "/labels", "/issues/label/urgent", "/issues/component/API"} {
			stub := &stubTracker{status: status}
			r := setup(t, stub)

			w := get(r, path)

			assert.Equal(t, status, w.Code, path)
			assert.JSONEq(t, `{"errorMessages":["upstream says no"],"errors":{}}`, w.Body.String(), path)
			assert.Equal(t, "application/json;charset=UTF-8", w.Header().Get("Content-Type"), path)
		}
	}
}

func TestUpstreamUnreachable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	repo := jira.New(jira.NewClient("http://127.0.0.1:1", "a", "b", nil), l)
	uc := usecase.New(repo, l, usecase.Config{ProjectKey: "ECSA", MaxResults: 10, TicketIssueType: "Task"})

	r := gin.New()
	trackerHTTP.RegisterRoutes(r, trackerHTTP.New(l, uc))

	w := get(r, "/projects")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
