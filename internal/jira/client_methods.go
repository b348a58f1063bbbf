package jira

import (
	"context"
	"fmt"
	"log/slog"
)

// Edit updates fields on the current ticket. Field values go through
// the same normalization as Create.
func (t *Ticket) Edit(ctx context.Context, fields Fields) Result {
	if t.ticketID == "" {
		return t.failure(missingTicketIDMessage)
	}

	params := map[string]interface{}{
		"fields": map[string]interface{}(normalizeFields(fields)),
	}

	if _, err := t.doJSON(ctx, "edit", "PUT", t.issueURL(), params); err != nil {
		return t.failure(fmt.Sprintf("error editing ticket - %v", err))
	}

	slog.Info("edited ticket", "ticket", t.ticketID, "url", t.TicketURL())
	return t.success()
}

// AddComment adds a comment to the current ticket.
func (t *Ticket) AddComment(ctx context.Context, comment string) Result {
	if t.ticketID == "" {
		return t.failure(missingTicketIDMessage)
	}

	params := map[string]interface{}{"body": comment}
	url := fmt.Sprintf("%s/comment", t.issueURL())

	if _, err := t.doJSON(ctx, "comment", "POST", url, params); err != nil {
		return t.failure(fmt.Sprintf("error adding comment to ticket - %v", err))
	}

	slog.Info("added comment to ticket", "ticket", t.ticketID, "url", t.TicketURL())
	return t.success()
}

// ChangeStatus transitions the current ticket to the named status. The
// numeric transition ID is looked up among the ticket's available
// transitions; an unknown status name is a failure.
func (t *Ticket) ChangeStatus(ctx context.Context, status string) Result {
	if t.ticketID == "" {
		return t.failure(missingTicketIDMessage)
	}

	transitionID, err := t.transitionID(ctx, status)
	if err != nil {
		return t.failure(fmt.Sprintf("error retrieving transition information - %v", err))
	}
	if transitionID == "" {
		return t.failure(fmt.Sprintf("not a valid status: %s", status))
	}

	params := map[string]interface{}{
		"transition": map[string]interface{}{"id": transitionID},
	}
	url := fmt.Sprintf("%s/transitions", t.issueURL())

	if _, err := t.doJSON(ctx, "transition", "POST", url, params); err != nil {
		return t.failure(fmt.Sprintf("error changing status of ticket - %v", err))
	}

	slog.Info("changed status of ticket", "ticket", t.ticketID, "status", status, "url", t.TicketURL())
	return t.success()
}

// transitionID resolves a status name to the transition ID whose
// target status carries that name. Empty when no transition matches.
func (t *Ticket) transitionID(ctx context.Context, statusName string) (string, error) {
	url := fmt.Sprintf("%s/transitions", t.issueURL())
	content, err := t.doJSON(ctx, "transitions", "GET", url, nil)
	if err != nil {
		return "", err
	}

	transitions, _ := content["transitions"].([]interface{})
	for _, raw := range transitions {
		transition, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		to, _ := transition["to"].(map[string]interface{})
		if to == nil {
			continue
		}
		if name, _ := to["name"].(string); name == statusName {
			id, _ := transition["id"].(string)
			return id, nil
		}
	}
	return "", nil
}
