package root

import (
	"github.com/crucial707/exercise-tracker/cmd/cli/config"
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:           "exlog",
	Short:         "Exercise Tracker CLI",
	Long:          "Command line interface for registering users and logging exercises against the Exercise Tracker API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if apiURL != "" {
			config.SetAPIURL(apiURL)
		}
	},
}

var apiURL string

func init() {
	RootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (default $"+config.EnvAPIURL+" or "+config.DefaultAPIURL+")")
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
