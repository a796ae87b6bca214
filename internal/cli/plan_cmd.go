package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/antigravity/internal/cli/formatter"
	"github.com/alexanderramin/antigravity/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		date       string
		regenerate bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"today"},
		Short:   "Show the exercise, meal and sleep plan for the day",
		Long: `Show the day's plan. A stored plan is reused until the profile,
check-in, medications or meals change; --regenerate forces a fresh one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOptionalDate(date); err != nil {
				return fmt.Errorf("--date %q: %w", date, err)
			}
			now := app.now()
			req := contract.NewPlanRequest(date)
			req.Now = &now
			req.Regenerate = regenerate

			resp, err := app.Plans.Today(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding plan: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatPlan(resp))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Day to plan (YYYY-MM-DD, default today)")
	f.BoolVar(&regenerate, "regenerate", false, "Ignore the stored plan and build a new one")
	f.BoolVar(&asJSON, "json", false, "Print the plan and coach facts as JSON")

	return cmd
}
