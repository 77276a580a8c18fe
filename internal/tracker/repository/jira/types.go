package jira

// ---- Request/Response types scoped to this package ----

// Project is an element of GET /project.
type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// SearchRequest is the query of GET /search/jql.
type SearchRequest struct {
	JQL        string
	Fields     []string
	MaxResults int
}

// SearchResponse is the body of GET /search/jql.
type SearchResponse struct {
	Issues        []Issue `json:"issues"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
	IsLast        bool    `json:"isLast"`
}

// Issue is a search hit. Only the fields the gateway requests are modelled.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary     string   `json:"summary"`
	Status      *Named   `json:"status"`
	IssueType   *Named   `json:"issuetype"`
	Assignee    *User    `json:"assignee"`
	Components  []Named  `json:"components"`
	Labels      []string `json:"labels"`
	FixVersions []Named  `json:"fixVersions"`
}

// Named covers status, issue type, component and version references.
type Named struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type User struct {
	AccountID   string `json:"accountId,omitempty"`
	DisplayName string `json:"displayName"`
}

// CreateIssueRequest is the body of POST /issue.
type CreateIssueRequest struct {
	Fields CreateIssueFields `json:"fields"`
}

type CreateIssueFields struct {
	Project     KeyRef   `json:"project"`
	Summary     string   `json:"summary"`
	Description *Doc     `json:"description,omitempty"`
	IssueType   Named    `json:"issuetype"`
	Labels      []string `json:"labels,omitempty"`
}

type KeyRef struct {
	Key string `json:"key"`
}

// CreateIssueResponse is the body of a 201 from POST /issue.
type CreateIssueResponse struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}
