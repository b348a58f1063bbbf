package main

import (
	"context"

	"github.com/spf13/cobra"
)

// watcherCmd represents the watcher command group
var watcherCmd = &cobra.Command{
	Use:   "watcher",
	Short: "Manage ticket watchers",
}

// watcherAddCmd represents the watcher add command
var watcherAddCmd = &cobra.Command{
	Use:   "add [username-or-email]",
	Short: "Add a watcher to a ticket",
	Long: `Add a watcher to a ticket. Accepts a username or an email
address; for an email, the part before the @ is used as the username.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ticketID, ok := requireID(cmd.Flags().GetString, "watcher add --id PROJ-123 user@example.com")
		if !ok {
			return
		}

		ticket, err := newTicketOrExit(ticketID)
		if err != nil {
			return
		}

		printResult(ticket.AddWatcher(context.Background(), args[0]))
	},
}

// watcherRemoveCmd represents the watcher remove command
var watcherRemoveCmd = &cobra.Command{
	Use:   "remove [username-or-email]",
	Short: "Remove a watcher from a ticket",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ticketID, ok := requireID(cmd.Flags().GetString, "watcher remove --id PROJ-123 user@example.com")
		if !ok {
			return
		}

		ticket, err := newTicketOrExit(ticketID)
		if err != nil {
			return
		}

		printResult(ticket.RemoveWatcher(context.Background(), args[0]))
	},
}

// watcherClearCmd represents the watcher clear command
var watcherClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all watchers from a ticket",
	Run: func(cmd *cobra.Command, args []string) {
		ticketID, ok := requireID(cmd.Flags().GetString, "watcher clear --id PROJ-123")
		if !ok {
			return
		}

		ticket, err := newTicketOrExit(ticketID)
		if err != nil {
			return
		}

		printResult(ticket.RemoveAllWatchers(context.Background()))
	},
}

func init() {
	rootCmd.AddCommand(watcherCmd)
	watcherCmd.AddCommand(watcherAddCmd, watcherRemoveCmd, watcherClearCmd)
	watcherCmd.PersistentFlags().String("id", "", "Ticket ID (e.g. PROJ-123)")
}
