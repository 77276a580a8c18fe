package jira

import (
	"jira-gateway/internal/tracker/repository"
	pkgLog "jira-gateway/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a Jira-backed tracker repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	if client == nil {
		panic("tracker/repository/jira: client is required")
	}
	return &implRepository{
		client: client,
		l:      l,
	}
}
