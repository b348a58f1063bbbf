package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment
// variables. Settings resolve in order: flags (bound by the CLI),
// TICKET_* environment variables, config file, defaults. Plain JIRA_*
// variables are honored as a fallback so existing environments keep
// working.
func Load(cfgFile string) {
	// explicit .env loading, missing files are fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TICKET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Standard JIRA_* variables as fallbacks for the prefixed ones.
	fallbacks := map[string]string{
		"jira.url":       "JIRA_URL",
		"jira.username":  "JIRA_USERNAME",
		"jira.api_token": "JIRA_API_TOKEN",
		"jira.project":   "JIRA_PROJECT_KEY",
	}
	for key, env := range fallbacks {
		prefixed := "TICKET_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if os.Getenv(prefixed) == "" && os.Getenv(env) != "" {
			viper.SetDefault(key, os.Getenv(env))
		}
	}
	if os.Getenv("TICKET_JIRA_USERNAME") == "" && os.Getenv("JIRA_USERNAME") == "" && os.Getenv("JIRA_EMAIL") != "" {
		viper.SetDefault("jira.username", os.Getenv("JIRA_EMAIL"))
	}

	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_port", 2112)

	viper.SetDefault("notifications.slack.enabled", os.Getenv("SLACK_BOT_USER_TOKEN") != "")
	viper.SetDefault("notifications.slack.channel", "#tickets")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
