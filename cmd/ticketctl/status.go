package main

import (
	"context"
	"fmt"
	"os"

	"ticketctl/internal/notify"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status [name]",
	Short: "Change the status of a ticket",
	Long: `Transition a ticket to the named status. The transition ID is
looked up among the ticket's available transitions, so the name must
match a reachable status exactly, e.g.:

  ticketctl status --id PROJ-123 "In Progress"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ticketID, ok := requireID(cmd.Flags().GetString, "status --id PROJ-123 \"In Progress\"")
		if !ok {
			return
		}

		ticket, err := newTicketOrExit(ticketID)
		if err != nil {
			return
		}

		ctx := context.Background()
		result := ticket.ChangeStatus(ctx, args[0])
		if !result.Failed() {
			if notifier := notify.FromConfig(); notifier != nil {
				message := fmt.Sprintf("Ticket %s moved to %s: %s", ticket.TicketID(), args[0], result.URL)
				if err := notifier.Notify(ctx, message); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
			}
		}
		printResult(result)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().String("id", "", "Ticket ID (e.g. PROJ-123)")
}
