package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration. It is built once by Load and never mutated.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream issue tracker
	Jira JiraConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// JiraConfig holds the tracker account and the project every query is scoped to.
type JiraConfig struct {
	Email            string
	APIToken         string
	BaseURL          string
	ProjectKey       string
	Timeout          time.Duration
	MaxResults       int
	WebhookIssueType string
}

const (
	// Jira's enhanced search rejects larger pages.
	maxSearchResults = 5000
)

var projectKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]+$`)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/ unless path is given.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Jira
	cfg.Jira.Email = v.GetString("jira.email")
	cfg.Jira.APIToken = v.GetString("jira.api_token")
	cfg.Jira.BaseURL = strings.TrimRight(v.GetString("jira.base_url"), "/")
	cfg.Jira.ProjectKey = v.GetString("jira.project_key")
	cfg.Jira.Timeout = v.GetDuration("jira.timeout")
	cfg.Jira.MaxResults = v.GetInt("jira.max_results")
	cfg.Jira.WebhookIssueType = v.GetString("jira.webhook_issue_type")

	// JIRA_EMAIL, JIRA_API_TOKEN and JIRA_BASE_URL map through the key replacer;
	// the project key has historically been PROJECT_KEY.
	if key := v.GetString("project_key"); key != "" {
		cfg.Jira.ProjectKey = key
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first missing or malformed required setting.
func (cfg *Config) Validate() error {
	if cfg.Jira.Email == "" {
		return errors.New("jira.email is required (JIRA_EMAIL)")
	}
	if cfg.Jira.APIToken == "" {
		return errors.New("jira.api_token is required (JIRA_API_TOKEN)")
	}
	if cfg.Jira.BaseURL == "" {
		return errors.New("jira.base_url is required (JIRA_BASE_URL)")
	}
	u, err := url.Parse(cfg.Jira.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("jira.base_url %q must be an absolute http(s) URL", cfg.Jira.BaseURL)
	}
	if cfg.Jira.ProjectKey == "" {
		return errors.New("jira.project_key is required (PROJECT_KEY)")
	}
	if !projectKeyPattern.MatchString(cfg.Jira.ProjectKey) {
		return fmt.Errorf("jira.project_key %q is not a valid project key", cfg.Jira.ProjectKey)
	}
	if cfg.Jira.Timeout <= 0 {
		return fmt.Errorf("jira.timeout must be positive, got %s", cfg.Jira.Timeout)
	}
	if cfg.Jira.MaxResults <= 0 || cfg.Jira.MaxResults > maxSearchResults {
		return fmt.Errorf("jira.max_results must be within 1..%d, got %d", maxSearchResults, cfg.Jira.MaxResults)
	}
	if cfg.Jira.WebhookIssueType == "" {
		return errors.New("jira.webhook_issue_type must not be empty")
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("jira.timeout", 10*time.Second)
	v.SetDefault("jira.max_results", 100)
	v.SetDefault("jira.webhook_issue_type", "Task")
}
