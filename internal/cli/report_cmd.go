package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/antigravity/internal/cli/formatter"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"week"},
		Short:   "Summarize the last seven days of meals",
		Long: `Summarize the seven days ending on --date: meals per day, the current
logging streak, the most frequent meal tags, medications on file, goal and BMI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			rep, err := app.Reports.Weekly(cmd.Context(), day)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatWeeklyReport(rep))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Last day of the week (YYYY-MM-DD, default today)")
	f.BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}
