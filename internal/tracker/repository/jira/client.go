package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jira-gateway/internal/metrics"
	"jira-gateway/internal/tracker"
)

const (
	apiPrefix = "/rest/api/3"

	// Upstream error bodies are relayed to callers; keep them bounded.
	maxErrorBody = 1 << 20
)

// Client is the HTTP wrapper for the Jira Cloud REST API v3.
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a Jira client. httpClient is shared by all requests and should carry a timeout.
func NewClient(baseURL, email, apiToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		email:      email,
		apiToken:   apiToken,
		httpClient: httpClient,
	}
}

// ListProjects calls GET /rest/api/3/project.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, "list_projects", http.MethodGet, "/project", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Search calls GET /rest/api/3/search/jql and returns the first page.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("jql", req.JQL)
	if len(req.Fields) > 0 {
		q.Set("fields", strings.Join(req.Fields, ","))
	}
	if req.MaxResults > 0 {
		q.Set("maxResults", strconv.Itoa(req.MaxResults))
	}

	var resp SearchResponse
	if err := c.do(ctx, "search", http.MethodGet, "/search/jql", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListProjectVersions calls GET /rest/api/3/project/{key}/versions.
func (c *Client) ListProjectVersions(ctx context.Context, projectKey string) ([]json.RawMessage, error) {
	var versions []json.RawMessage
	path := fmt.Sprintf("/project/%s/versions", url.PathEscape(projectKey))
	if err := c.do(ctx, "list_versions", http.MethodGet, path, nil, nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// ListProjectComponents calls GET /rest/api/3/project/{key}/components.
func (c *Client) ListProjectComponents(ctx context.Context, projectKey string) ([]json.RawMessage, error) {
	var components []json.RawMessage
	path := fmt.Sprintf("/project/%s/components", url.PathEscape(projectKey))
	if err := c.do(ctx, "list_components", http.MethodGet, path, nil, nil, &components); err != nil {
		return nil, err
	}
	return components, nil
}

// CreateIssue calls POST /rest/api/3/issue.
func (c *Client) CreateIssue(ctx context.Context, req CreateIssueRequest) (*CreateIssueResponse, error) {
	var resp CreateIssueResponse
	if err := c.do(ctx, "create_issue", http.MethodPost, "/issue", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one authenticated call. Non-2xx answers become *tracker.UpstreamError;
// transport and decoding failures wrap tracker.ErrUpstreamUnavailable.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", operation, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	httpReq.SetBasicAuth(c.email, c.apiToken)
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.ObserveUpstream(operation, 0, time.Since(start))
		return fmt.Errorf("%w: %s: %v", tracker.ErrUpstreamUnavailable, operation, err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(operation, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &tracker.UpstreamError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        raw,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", tracker.ErrUpstreamUnavailable, operation, err)
	}
	return nil
}
