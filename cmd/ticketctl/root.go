package main

import (
	"fmt"
	"os"

	"ticketctl/internal/config"
	"ticketctl/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ticketctl",
	Short: "ticketctl: Jira ticket operations from the command line",
	Long: `ticketctl wraps the Jira REST API into simple ticket operations:
create, edit, comment, status transitions, watcher management and
file attachments. Configure it with TICKET_* environment variables,
plain JIRA_* variables, or a config.yaml.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'ticketctl --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("url", "", "Jira instance URL (overrides config and JIRA_URL)")
	rootCmd.PersistentFlags().String("project", "", "Jira project key (overrides config and JIRA_PROJECT_KEY)")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Expose Prometheus metrics on this address while running")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("jira.url", rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag("jira.project", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("metrics_addr", rootCmd.PersistentFlags().Lookup("metrics-addr"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))

	if addr := viper.GetString("metrics_addr"); addr != "" {
		go func() {
			if err := telemetry.StartMetricsServer(addr); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: metrics server failed: %v\n", err)
			}
		}()
	}
}
