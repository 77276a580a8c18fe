package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read-only gateway endpoints. Paths are unversioned
// because existing clients call them at the root.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.GET("/projects", h.ListProjects)

	r.GET("/epics", h.ListEpics)
	r.GET("/stories", h.ListStories)
	r.GET("/tasks", h.ListTasks)
	r.GET("/bugs", h.ListBugs)

	r.GET("/versions", h.ListVersions)
	r.GET("/components", h.ListComponents)
	r.GET("/labels", h.ListLabels)

	r.GET("/issues/component/:component", h.ListIssuesByComponent)
	r.GET("/issues/label/:label", h.ListIssuesByLabel)
}
