package exercises

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

// ==========================
// Init Exercises
// ==========================
func init() {
	exercisesCmd := &cobra.Command{
		Use:   "exercises",
		Short: "Log exercises",
	}

	exercisesCmd.AddCommand(addExerciseCmd())
	root.GetRoot().AddCommand(exercisesCmd)
}

// ==========================
// ADD
// ==========================
func addExerciseCmd() *cobra.Command {
	var description, date string
	var duration int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add <user-id>",
		Short: "Log an exercise for a user",
		Long:  "Log an exercise for a user. --date takes yyyy-mm-dd and defaults to today on the server.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := url.Values{
				"description": {description},
				"duration":    {strconv.Itoa(duration)},
			}
			if date != "" {
				form.Set("date", date)
			}

			var rec models.ExerciseRecord
			if err := client.PostForm(client.UserPath(args[0], "exercises"), form, &rec); err != nil {
				return fmt.Errorf("add exercise: %w", err)
			}
			if asJSON {
				return output.PrintJSON(rec)
			}
			output.RenderTable(
				[]string{"User", "Description", "Duration", "Date"},
				[][]interface{}{{rec.Username, rec.Description, rec.Duration, rec.Date}},
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "what was done (required)")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes (required)")
	cmd.Flags().StringVar(&date, "date", "", "date as yyyy-mm-dd")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}
