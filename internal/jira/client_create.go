package jira

import (
	"context"
	"fmt"
	"log/slog"
)

// Create creates a new ticket. Summary and description are required;
// any other fields go through field normalization. On success the
// handle adopts the new ticket's key and the result URL points at it.
func (t *Ticket) Create(ctx context.Context, summary, description string, fields Fields) Result {
	errorMessage := ""
	if summary == "" {
		errorMessage = "summary is a necessary parameter for ticket creation"
	}
	if description == "" {
		errorMessage = "description is a necessary parameter for ticket creation"
	}
	if errorMessage != "" {
		return t.failure(errorMessage)
	}

	params := t.createPayload(summary, description, fields)

	content, err := t.doJSON(ctx, "create", "POST", t.restURL, params)
	if err != nil {
		return t.failure(fmt.Sprintf("error creating ticket - %v", err))
	}

	key, _ := content["key"].(string)
	if key == "" {
		return t.failure("create response did not contain a ticket key")
	}
	t.ticketID = key
	slog.Info("created ticket", "ticket", t.ticketID, "url", t.TicketURL())

	result := t.success()
	result.Content = content
	return result
}

// createPayload builds the nested fields payload for ticket creation.
func (t *Ticket) createPayload(summary, description string, fields Fields) map[string]interface{} {
	params := map[string]interface{}{
		"project":     map[string]interface{}{"key": t.Project},
		"summary":     summary,
		"description": description,
	}
	for key, value := range normalizeFields(fields) {
		params[key] = value
	}
	return map[string]interface{}{"fields": params}
}
