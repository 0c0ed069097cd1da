package logs

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/crucial707/exercise-tracker/cmd/cli/client"
	"github.com/crucial707/exercise-tracker/cmd/cli/output"
	"github.com/crucial707/exercise-tracker/cmd/cli/root"
	"github.com/crucial707/exercise-tracker/internal/models"
	"github.com/spf13/cobra"
)

func init() {
	root.GetRoot().AddCommand(logsCmd())
}

// logsCmd prints a user's exercise log, optionally bounded by --from/--to and capped by --limit.
func logsCmd() *cobra.Command {
	var from, to string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "logs <user-id>",
		Short: "Show a user's exercise log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if from != "" {
				q.Set("from", from)
			}
			if to != "" {
				q.Set("to", to)
			}
			if cmd.Flags().Changed("limit") {
				q.Set("limit", strconv.Itoa(limit))
			}

			var result models.LogResult
			if err := client.GetJSON(client.UserPath(args[0], "logs"), q, &result); err != nil {
				return fmt.Errorf("get logs: %w", err)
			}
			if asJSON {
				return output.PrintJSON(result)
			}

			fmt.Printf("%s (%s): %d exercise(s)\n", result.Username, result.UserID, result.Count)
			rows := make([][]interface{}, 0, len(result.Log))
			for _, e := range result.Log {
				rows = append(rows, []interface{}{e.Date, e.Description, e.Duration})
			}
			output.RenderTable([]string{"Date", "Description", "Duration"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "earliest date (yyyy-mm-dd), inclusive")
	cmd.Flags().StringVar(&to, "to", "", "latest date (yyyy-mm-dd), inclusive")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of entries")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")

	return cmd
}
