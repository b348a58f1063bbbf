package cmdutils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewTicket(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("jira.project", "PROJ")

		_, err := NewTicket("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "jira.url")
	})

	t.Run("missing project", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("jira.url", "https://jira.example.com")

		_, err := NewTicket("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "jira.project")
	})

	t.Run("valid with basic credentials", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("jira.url", "https://jira.example.com")
		viper.Set("jira.project", "PROJ")
		viper.Set("jira.username", "user")
		viper.Set("jira.api_token", "token")

		ticket, err := NewTicket("7")
		assert.NoError(t, err)
		assert.Equal(t, "PROJ-7", ticket.TicketID())
		assert.Equal(t, "https://jira.example.com/browse/PROJ-7", ticket.TicketURL())
	})

	t.Run("valid without credentials", func(t *testing.T) {
		// No credential pair selects the negotiated session flavor.
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("jira.url", "https://jira.example.com")
		viper.Set("jira.project", "PROJ")

		ticket, err := NewTicket("")
		assert.NoError(t, err)
		assert.Empty(t, ticket.TicketID())
	})
}
