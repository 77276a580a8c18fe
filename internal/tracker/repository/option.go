package repository

// SearchIssuesOptions holds the parameters of a single search call.
type SearchIssuesOptions struct {
	JQL        string   // Already escaped query
	Fields     []string // Fields to return (default: the flattened Issue fields)
	MaxResults int      // Page size; only the first page is fetched
}

// CreateIssueOptions holds the parameters for creating a ticket.
type CreateIssueOptions struct {
	ProjectKey  string
	IssueType   string
	Summary     string
	Description string // Plain text, one paragraph per line
	Labels      []string
}
