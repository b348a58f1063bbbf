package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify that the configured project (and optionally a ticket) exists",
	Run: func(cmd *cobra.Command, args []string) {
		ticket, err := newTicketOrExit("")
		if err != nil {
			return
		}

		ctx := context.Background()
		project := viper.GetString("jira.project")
		if !ticket.VerifyProject(ctx, project) {
			fmt.Printf("%s project %s is not valid\n", failureStyle.Render("Failure:"), project)
			exit(1)
			return
		}
		fmt.Printf("%s project %s is valid\n", successStyle.Render("Success:"), project)

		if ticketID, _ := cmd.Flags().GetString("id"); ticketID != "" {
			if !ticket.VerifyTicketID(ctx, ticketID) {
				fmt.Printf("%s ticket %s is not valid\n", failureStyle.Render("Failure:"), ticketID)
				exit(1)
				return
			}
			fmt.Printf("%s ticket %s is valid\n", successStyle.Render("Success:"), ticketID)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("id", "", "Ticket ID to verify (e.g. PROJ-123)")
}
