package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error
// listing every invalid one. Call after Load.
func ValidateConfig() error {
	var problems []string

	if raw := viper.GetString("jira.url"); raw != "" {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			problems = append(problems, fmt.Sprintf("jira.url must be an absolute URL, got: %q", raw))
		}
	}

	// Basic auth needs both halves; neither means session auth.
	username := viper.GetString("jira.username")
	token := viper.GetString("jira.api_token")
	if (username == "") != (token == "") {
		problems = append(problems, "jira.username and jira.api_token must be set together")
	}

	if port := viper.GetInt("metrics_port"); port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("metrics_port must be between 1 and 65535, got: %d", port))
	}

	if viper.GetBool("notifications.slack.enabled") && viper.GetString("notifications.slack.channel") == "" {
		problems = append(problems, "notifications.slack.channel is required when slack notifications are enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
