package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load("")

	assert.False(t, viper.GetBool("verbose"))
	assert.Equal(t, 2112, viper.GetInt("metrics_port"))
	assert.Equal(t, "#tickets", viper.GetString("notifications.slack.channel"))
}

func TestLoad_PrefixedEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("TICKET_JIRA_URL", "https://jira.example.com")
	t.Setenv("TICKET_JIRA_PROJECT", "PROJ")

	Load("")

	assert.Equal(t, "https://jira.example.com", viper.GetString("jira.url"))
	assert.Equal(t, "PROJ", viper.GetString("jira.project"))
}

func TestLoad_PlainJiraEnvFallback(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("JIRA_URL", "https://fallback.example.com")
	t.Setenv("JIRA_PROJECT_KEY", "FALL")

	Load("")

	assert.Equal(t, "https://fallback.example.com", viper.GetString("jira.url"))
	assert.Equal(t, "FALL", viper.GetString("jira.project"))
}

func TestLoad_PrefixedEnvWinsOverFallback(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("TICKET_JIRA_URL", "https://primary.example.com")
	t.Setenv("JIRA_URL", "https://fallback.example.com")

	Load("")

	assert.Equal(t, "https://primary.example.com", viper.GetString("jira.url"))
}

func TestLoad_SlackEnabledByToken(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SLACK_BOT_USER_TOKEN", "xoxb-test")

	Load("")

	assert.True(t, viper.GetBool("notifications.slack.enabled"))
}
