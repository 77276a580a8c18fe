package usecase

import (
	"jira-gateway/internal/tracker"
	"jira-gateway/internal/tracker/repository"
	"jira-gateway/pkg/log"
)

// Config scopes every query to one project.
type Config struct {
	ProjectKey      string
	MaxResults      int
	TicketIssueType string // Issue type used for tickets created from webhooks
}

// implUseCase is the private implementation of tracker.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	cfg  Config
}

// New creates a new tracker UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config) tracker.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		cfg:  cfg,
	}
}
