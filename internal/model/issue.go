package model

// IssueType is one of the tracker issue types exposed by the gateway.
type IssueType string

const (
	IssueTypeEpic  IssueType = "Epic"
	IssueTypeStory IssueType = "Story"
	IssueTypeTask  IssueType = "Task"
	IssueTypeBug   IssueType = "Bug"
)

// Issue is the flattened view of a tracker issue.
type Issue struct {
	ID          string
	Key         string
	Type        string
	Summary     string
	Status      string
	Assignee    string
	Components  []string
	Labels      []string
	FixVersions []string
}

// Project is a tracker project summary.
type Project struct {
	ID   string
	Key  string
	Name string
}

// CreatedIssue identifies a ticket the gateway just created.
type CreatedIssue struct {
	ID   string
	Key  string
	Self string
}
