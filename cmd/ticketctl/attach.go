package main

import (
	"context"

	"github.com/spf13/cobra"
)

// attachCmd represents the attach command
var attachCmd = &cobra.Command{
	Use:   "attach [file]",
	Short: "Attach a file to a ticket",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ticketID, ok := requireID(cmd.Flags().GetString, "attach --id PROJ-123 ./report.txt")
		if !ok {
			return
		}

		ticket, err := newTicketOrExit(ticketID)
		if err != nil {
			return
		}

		printResult(ticket.AddAttachment(context.Background(), args[0]))
	},
}

func init() {
	rootCmd.AddCommand(attachCmd)
	attachCmd.Flags().String("id", "", "Ticket ID (e.g. PROJ-123)")
}
