package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit fields on an existing ticket",
	Long: `Edit fields on an existing ticket. Fields are passed as repeated
--field key=value flags and go through the same normalization as
create, e.g.:

  ticketctl edit --id PROJ-123 --field priority=Critical --field type=Bug`,
	Run: func(cmd *cobra.Command, args []string) {
		ticketID, ok := requireID(cmd.Flags().GetString, "edit --id PROJ-123 --field key=value")
		if !ok {
			return
		}

		rawFields, _ := cmd.Flags().GetStringArray("field")
		if len(rawFields) == 0 {
			fmt.Fprintf(os.Stderr, "Error: at least one --field is required\n")
			exit(1)
			return
		}

		fields, err := parseFields(rawFields)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exit(1)
			return
		}

		ticket, err := newTicketOrExit(ticketID)
		if err != nil {
			return
		}

		printResult(ticket.Edit(context.Background(), fields))
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().String("id", "", "Ticket ID (e.g. PROJ-123)")
	editCmd.Flags().StringArray("field", nil, "Ticket field as key=value (repeatable)")
}
