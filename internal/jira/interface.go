package jira

import "context"

// TicketAPI defines the operations a ticket handle exposes to
// consumers; the CLI and tests program against it.
type TicketAPI interface {
	SetTicketID(ticketID string)
	TicketID() string
	TicketURL() string
	Create(ctx context.Context, summary, description string, fields Fields) Result
	Edit(ctx context.Context, fields Fields) Result
	AddComment(ctx context.Context, comment string) Result
	ChangeStatus(ctx context.Context, status string) Result
	AddWatcher(ctx context.Context, watcher string) Result
	RemoveWatcher(ctx context.Context, watcher string) Result
	RemoveAllWatchers(ctx context.Context) Result
	AddAttachment(ctx context.Context, path string) Result
	Get(ctx context.Context) Result
}
