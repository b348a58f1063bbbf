package main

import (
	"fmt"

	"ticketctl/internal/jira"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
)

// printResult renders a result record and exits non-zero on failure.
func printResult(result jira.Result) {
	if result.Failed() {
		fmt.Printf("%s %s\n", failureStyle.Render("Failure:"), result.ErrorMessage)
		exit(1)
		return
	}

	fmt.Println(successStyle.Render("Success"))
	if result.URL != "" {
		fmt.Printf("Ticket: %s\n", urlStyle.Render(result.URL))
	}
	if len(result.Watchers) > 0 {
		fmt.Println("Watchers removed:")
		for _, watcher := range result.Watchers {
			fmt.Printf("  - %s\n", watcher)
		}
	}
}
