package notify

import "context"

// Notifier sends a human-readable notification about a ticket event.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
