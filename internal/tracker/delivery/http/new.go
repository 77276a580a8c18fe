package http

import (
	"github.com/gin-gonic/gin"

	"jira-gateway/internal/tracker"
	"jira-gateway/pkg/log"
)

// Handler is the public interface for the tracker HTTP delivery layer.
type Handler interface {
	ListProjects(c *gin.Context)
	ListEpics(c *gin.Context)
	ListStories(c *gin.Context)
	ListTasks(c *gin.Context)
	ListBugs(c *gin.Context)
	ListVersions(c *gin.Context)
	ListComponents(c *gin.Context)
	ListLabels(c *gin.Context)
	ListIssuesByComponent(c *gin.Context)
	ListIssuesByLabel(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc tracker.UseCase
}

// New creates a new HTTP handler for the tracker domain.
func New(l log.Logger, uc tracker.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
