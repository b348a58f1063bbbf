package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"ticketctl/internal/jira"
	"ticketctl/internal/notify"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new ticket",
	Long: `Create a new ticket in the configured project. Summary and
description are required; when run interactively without them, you are
prompted. Additional fields are passed as repeated --field key=value
flags, e.g.:

  ticketctl create -s "Broken build" -d "Details..." \
      --field type=Bug --field priority=Major --field assignee=jdoe`,
	Run: func(cmd *cobra.Command, args []string) {
		summary, _ := cmd.Flags().GetString("summary")
		description, _ := cmd.Flags().GetString("description")
		rawFields, _ := cmd.Flags().GetStringArray("field")

		if summary == "" {
			prompt := &survey.Input{Message: "Summary:"}
			if err := survey.AskOne(prompt, &summary, survey.WithValidator(survey.Required)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exit(1)
			}
		}
		if description == "" {
			prompt := &survey.Multiline{Message: "Description:"}
			if err := survey.AskOne(prompt, &description, survey.WithValidator(survey.Required)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exit(1)
			}
		}

		fields, err := parseFields(rawFields)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exit(1)
		}

		ticket, err := newTicketOrExit("")
		if err != nil {
			return
		}

		ctx := context.Background()
		result := ticket.Create(ctx, summary, description, fields)
		if !result.Failed() {
			if notifier := notify.FromConfig(); notifier != nil {
				message := fmt.Sprintf("Ticket %s created: %s", ticket.TicketID(), result.URL)
				if err := notifier.Notify(ctx, message); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
			}
		}
		printResult(result)
	},
}

// parseFields converts repeated key=value flags into ticket fields.
func parseFields(raw []string) (jira.Fields, error) {
	fields := jira.Fields{}
	for _, pair := range raw {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", pair)
		}
		fields[key] = value
	}
	return fields, nil
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringP("summary", "s", "", "Ticket summary")
	createCmd.Flags().StringP("description", "d", "", "Ticket description")
	createCmd.Flags().StringArray("field", nil, "Additional ticket field as key=value (repeatable)")
}
