package jira

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

func (t *Ticket) watchersURL() string {
	return fmt.Sprintf("%s/watchers", t.issueURL())
}

// watcherName derives the watcher username from a username or email
// address; for an email, the local part before the @ is used.
func watcherName(nameOrEmail string) string {
	if at := strings.Index(nameOrEmail, "@"); at >= 0 {
		return strings.TrimSpace(nameOrEmail[:at])
	}
	return strings.TrimSpace(nameOrEmail)
}

// watcherList returns the usernames currently watching the ticket, in
// the order the API reports them.
func (t *Ticket) watcherList(ctx context.Context) ([]string, error) {
	content, err := t.doJSON(ctx, "watchers", "GET", t.watchersURL(), nil)
	if err != nil {
		return nil, err
	}

	raw, _ := content["watchers"].([]interface{})
	watchers := make([]string, 0, len(raw))
	for _, entry := range raw {
		watcher, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if name, _ := watcher["name"].(string); name != "" {
			watchers = append(watchers, name)
		}
	}
	return watchers, nil
}

// AddWatcher subscribes a user to the current ticket. Accepts a
// username or an email address. An empty derived name is rejected:
// posting an empty watcher would silently add the requestor instead.
func (t *Ticket) AddWatcher(ctx context.Context, watcher string) Result {
	if t.ticketID == "" {
		return t.failure(missingTicketIDMessage)
	}

	name := watcherName(watcher)
	if name == "" {
		return t.failure(fmt.Sprintf("error adding %q as a watcher to ticket", watcher))
	}

	// The watchers endpoint takes the bare username as a JSON string.
	if _, err := t.doJSON(ctx, "add_watcher", "POST", t.watchersURL(), name); err != nil {
		return t.failure(fmt.Sprintf("error adding %s as a watcher to ticket - %v", name, err))
	}

	slog.Info("added watcher to ticket", "watcher", name, "ticket", t.ticketID, "url", t.TicketURL())
	return t.success()
}

// RemoveWatcher unsubscribes a user from the current ticket. Accepts a
// username or an email address.
func (t *Ticket) RemoveWatcher(ctx context.Context, watcher string) Result {
	if t.ticketID == "" {
		return t.failure(missingTicketIDMessage)
	}

	name := watcherName(watcher)
	if _, err := t.doJSON(ctx, "remove_watcher", "DELETE", t.removeWatcherURL(name), nil); err != nil {
		return t.failure(fmt.Sprintf("error removing watcher %s from ticket - %v", name, err))
	}

	slog.Info("removed watcher from ticket", "watcher", name, "ticket", t.ticketID, "url", t.TicketURL())
	return t.success()
}

// RemoveAllWatchers removes every watcher from the current ticket.
// Individual removal failures are aggregated into a single count-based
// failure; on full success the result lists the removed watchers.
func (t *Ticket) RemoveAllWatchers(ctx context.Context) Result {
	if t.ticketID == "" {
		return t.failure(missingTicketIDMessage)
	}

	watchers, err := t.watcherList(ctx)
	if err != nil {
		return t.failure(fmt.Sprintf("error retrieving watchers list - %v", err))
	}

	failed := 0
	for _, watcher := range watchers {
		if _, err := t.doJSON(ctx, "remove_watcher", "DELETE", t.removeWatcherURL(watcher), nil); err != nil {
			slog.Error("error removing watcher from ticket", "watcher", watcher, "ticket", t.ticketID, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return t.failure(fmt.Sprintf("error removing %d watchers from ticket", failed))
	}

	slog.Info("removed watchers from ticket", "ticket", t.ticketID, "count", len(watchers), "url", t.TicketURL())
	result := t.success()
	result.Watchers = watchers
	return result
}

func (t *Ticket) removeWatcherURL(name string) string {
	return fmt.Sprintf("%s?username=%s", t.watchersURL(), url.QueryEscape(name))
}
