package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// commentCmd represents the comment command
var commentCmd = &cobra.Command{
	Use:   "comment [text]",
	Short: "Add a comment to a ticket",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ticketID, ok := requireID(cmd.Flags().GetString, "comment --id PROJ-123 \"comment text\"")
		if !ok {
			return
		}

		text := strings.Join(args, " ")
		if strings.TrimSpace(text) == "" {
			fmt.Fprintf(os.Stderr, "Error: comment text must not be empty\n")
			exit(1)
			return
		}

		ticket, err := newTicketOrExit(ticketID)
		if err != nil {
			return
		}

		printResult(ticket.AddComment(context.Background(), text))
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.Flags().String("id", "", "Ticket ID (e.g. PROJ-123)")
}
