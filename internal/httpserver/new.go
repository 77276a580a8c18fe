package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	trackerHTTP "jira-gateway/internal/tracker/delivery/http"
	"jira-gateway/pkg/log"
)

// WebhookHandler serves the inbound webhook endpoints.
type WebhookHandler interface {
	HandleGitHubWebhook(c *gin.Context)
	HandleJiraWebhook(c *gin.Context)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Tracker domain
	trackerHandler trackerHTTP.Handler
	webhookHandler WebhookHandler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Tracker domain
	TrackerHandler trackerHTTP.Handler
	WebhookHandler WebhookHandler
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		trackerHandler: cfg.TrackerHandler,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// Component and label names may contain escaped slashes.
	srv.gin.UseRawPath = true

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.trackerHandler == nil {
		return errors.New("tracker handler is required")
	}
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
