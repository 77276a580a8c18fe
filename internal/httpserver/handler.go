package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jira-gateway/internal/middleware"
	"jira-gateway/internal/model"
	trackerHTTP "jira-gateway/internal/tracker/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(
		gin.Recovery(),
		mw.RequestID(),
		mw.AccessLog(),
		mw.Metrics(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	trackerHTTP.RegisterRoutes(srv.gin, srv.trackerHandler)
	srv.l.Infof(ctx, "Tracker routes registered")

	srv.gin.POST("/webhook/github", srv.webhookHandler.HandleGitHubWebhook)
	srv.gin.POST("/webhook/jira", srv.webhookHandler.HandleJiraWebhook)
	srv.l.Infof(ctx, "Webhook routes registered at POST /webhook/github and POST /webhook/jira")

	return nil
}
