package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch and display a ticket",
	Run: func(cmd *cobra.Command, args []string) {
		ticketID, ok := requireID(cmd.Flags().GetString, "get --id PROJ-123")
		if !ok {
			return
		}

		ticket, err := newTicketOrExit(ticketID)
		if err != nil {
			return
		}

		result := ticket.Get(context.Background())
		if !result.Failed() && result.Content != nil {
			key, _ := result.Content["key"].(string)
			fmt.Printf("Ticket: %s\n", key)
			if fields, ok := result.Content["fields"].(map[string]interface{}); ok {
				if summary, _ := fields["summary"].(string); summary != "" {
					fmt.Printf("Summary: %s\n", summary)
				}
				if description, _ := fields["description"].(string); description != "" {
					fmt.Printf("Description:\n%s\n", description)
				}
				if status, ok := fields["status"].(map[string]interface{}); ok {
					if name, _ := status["name"].(string); name != "" {
						fmt.Printf("Status: %s\n", name)
					}
				}
			}
		}
		printResult(result)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().String("id", "", "Ticket ID (e.g. PROJ-123)")
}
