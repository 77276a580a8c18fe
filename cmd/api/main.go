package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"jira-gateway/config"
	_ "jira-gateway/docs" // Swagger docs
	"jira-gateway/internal/httpserver"
	trackerHTTP "jira-gateway/internal/tracker/delivery/http"
	jiraRepo "jira-gateway/internal/tracker/repository/jira"
	trackerUC "jira-gateway/internal/tracker/usecase"
	"jira-gateway/internal/webhook"
	"jira-gateway/pkg/log"
)

// @title       Jira Gateway API
// @description Read-only views over a Jira project plus GitHub and Jira webhook intake.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	configPath := pflag.StringP("config", "c", "", "path to config.yaml (default: search ./config, ., /etc/app/)")
	pflag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Jira gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Jira: %s (project %s)", cfg.Jira.BaseURL, cfg.Jira.ProjectKey)

	// 3. Tracker domain. One client for every upstream call.
	httpClient := &http.Client{Timeout: cfg.Jira.Timeout}
	jiraClient := jiraRepo.NewClient(cfg.Jira.BaseURL, cfg.Jira.Email, cfg.Jira.APIToken, httpClient)
	repo := jiraRepo.New(jiraClient, logger)

	uc := trackerUC.New(repo, logger, trackerUC.Config{
		ProjectKey:      cfg.Jira.ProjectKey,
		MaxResults:      cfg.Jira.MaxResults,
		TicketIssueType: cfg.Jira.WebhookIssueType,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrackerHandler: trackerHTTP.New(logger, uc),
		WebhookHandler: webhook.NewHandler(uc, logger),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
