package cmdutils

import (
	"fmt"

	"ticketctl/internal/jira"

	"github.com/spf13/viper"
)

// NewTicket builds a ticket handle from configuration. Declared as a
// var so command tests can swap in a stub.
var NewTicket = func(ticketID string) (*jira.Ticket, error) {
	baseURL := viper.GetString("jira.url")
	project := viper.GetString("jira.project")
	username := viper.GetString("jira.username")
	apiToken := viper.GetString("jira.api_token")

	if baseURL == "" {
		return nil, fmt.Errorf("jira.url config or JIRA_URL environment variable is required")
	}
	if project == "" {
		return nil, fmt.Errorf("jira.project config or JIRA_PROJECT_KEY environment variable is required")
	}

	// A credential pair selects basic auth; without one the handle
	// falls back to the negotiated session handshake.
	var cred *jira.Credential
	if username != "" && apiToken != "" {
		cred = &jira.Credential{
			Mode:     jira.CredentialBasic,
			Username: username,
			Password: apiToken,
		}
	}

	return jira.New(baseURL, project, cred, ticketID), nil
}
