package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jira-gateway/internal/model"
	"jira-gateway/internal/tracker"
)

// ListProjects godoc
// @Summary     List projects
// @Description Returns the key and name of every project visible to the tracker account.
// @Tags        Tracker
// @Produce     json
// @Success     200 {array}  projectResp
// @Failure     502 {object} response.Resp "Tracker unreachable"
// @Router      /projects [GET]
func (h *handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListProjects(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProjects: %v", err)
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProjectsResp(output))
}

// ListEpics godoc
// @Summary     List epics
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} issueResp
// @Router      /epics [GET]
func (h *handler) ListEpics(c *gin.Context) { h.listIssues(c, model.IssueTypeEpic) }

// ListStories godoc
// @Summary     List stories
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} issueResp
// @Router      /stories [GET]
func (h *handler) ListStories(c *gin.Context) { h.listIssues(c, model.IssueTypeStory) }

// ListTasks godoc
// @Summary     List tasks
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} issueResp
// @Router      /tasks [GET]
func (h *handler) ListTasks(c *gin.Context) { h.listIssues(c, model.IssueTypeTask) }

// ListBugs godoc
// @Summary     List bugs
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} issueResp
// @Router      /bugs [GET]
func (h *handler) ListBugs(c *gin.Context) { h.listIssues(c, model.IssueTypeBug) }

func (h *handler) listIssues(c *gin.Context, typ model.IssueType) {
	ctx := c.Request.Context()

	output, err := h.uc.ListIssues(ctx, tracker.ListIssuesInput{Type: typ})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIssues %s: %v", typ, err)
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newIssuesResp(output))
}

// ListVersions godoc
// @Summary     List versions
// @Description Returns the configured project's versions exactly as the tracker sends them.
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} object
// @Router      /versions [GET]
func (h *handler) ListVersions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListVersions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListVersions: %v", err)
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRawResp(output))
}

// ListComponents godoc
// @Summary     List components
// @Description Returns the configured project's components exactly as the tracker sends them.
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} object
// @Router      /components [GET]
func (h *handler) ListComponents(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListComponents(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListComponents: %v", err)
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRawResp(output))
}

// ListLabels godoc
// @Summary     List labels
// @Description Returns the distinct labels used by the configured project's issues.
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} string
// @Router      /labels [GET]
func (h *handler) ListLabels(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListLabels(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLabels: %v", err)
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newLabelsResp(output))
}

// ListIssuesByComponent godoc
// @Summary     List issues of a component
// @Tags        Tracker
// @Produce     json
// @Param       component path string true "Component name"
// @Success     200 {array}  issueResp
// @Failure     400 {object} response.Resp "Invalid component"
// @Router      /issues/component/{component} [GET]
func (h *handler) ListIssuesByComponent(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListIssuesByComponent(ctx, c.Param("component"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIssuesByComponent: %v", err)
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newIssuesResp(output))
}

// ListIssuesByLabel godoc
// @Summary     List issues with a label
// @Tags        Tracker
// @Produce     json
// @Param       label path string true "Label"
// @Success     200 {array}  issueResp
// @Failure     400 {object} response.Resp "Invalid label"
// @Router      /issues/label/{label} [GET]
func (h *handler) ListIssuesByLabel(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListIssuesByLabel(ctx, c.Param("label"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIssuesByLabel: %v", err)
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newIssuesResp(output))
}
