package main

import (
	"fmt"
	"os"

	"ticketctl/internal/cmdutils"
	"ticketctl/internal/jira"
)

// newTicketOrExit builds a ticket handle from configuration, printing
// the error and exiting on misconfiguration.
func newTicketOrExit(ticketID string) (*jira.Ticket, error) {
	ticket, err := cmdutils.NewTicket(ticketID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return nil, err
	}
	return ticket, nil
}

// requireID fetches the --id flag value, exiting with usage help when
// it is missing.
func requireID(get func(string) (string, error), usage string) (string, bool) {
	ticketID, _ := get("id")
	if ticketID == "" {
		fmt.Fprintf(os.Stderr, "Error: --id flag is required\n")
		fmt.Fprintf(os.Stderr, "Usage: %s %s\n", os.Args[0], usage)
		exit(1)
		return "", false
	}
	return ticketID, true
}
