package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/antigravity/internal/cli/formatter"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
)

func newCheckInCmd(app *App) *cobra.Command {
	var (
		date        string
		interactive bool
		region      string
		answers     checkInAnswers
	)

	cmd := &cobra.Command{
		Use:     "checkin",
		Aliases: []string{"check-in"},
		Short:   "Record how you feel and what today looks like",
		Long: `Record today's check-in. Mood, stress, weather, temperature, air and
location are required; digestion and sleep are optional. Recording again
on the same day replaces the earlier check-in and the day's plan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}

			a := &answers
			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				a = newCheckInAnswers()
				if err := checkInForm(a).Run(); err != nil {
					return err
				}
			} else if missing := missingCheckInFlags(cmd); len(missing) > 0 {
				return fmt.Errorf("missing required flags: %s (or use -i)", strings.Join(missing, ", "))
			}

			c := a.toCheckIn(day)
			c.Environment.RegionCode = strings.TrimSpace(region)
			if err := app.CheckIns.Record(cmd.Context(), c); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checked in for %s.\n", formatter.HumanDay(day))
			fmt.Fprintln(out, formatter.Dim("Run `antigravity plan` to see the day's plan."))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Day to record (YYYY-MM-DD, default today)")
	f.BoolVarP(&interactive, "interactive", "i", false, "Answer with a form instead of flags")
	f.StringVar(&region, "region", "", "Region code, kept for reference")
	f.Var(newEnumValue(&answers.Mood, "mood", domain.ParseMood), "mood", enumHelp(domain.ValidMoods))
	f.Var(newEnumValue(&answers.Stress, "stress", domain.ParseStress), "stress", enumHelp(domain.ValidStressLevels))
	f.Var(newEnumValue(&answers.Digestion, "digestion", domain.ParseDigestion), "digestion", enumHelp(domain.ValidDigestion)+" (optional)")
	f.Var(newEnumValue(&answers.SleepQuality, "sleep", domain.ParseSleepQuality), "sleep", enumHelp(domain.ValidSleepQualities)+" (optional)")
	f.Var(newEnumValue(&answers.Weather, "weather", domain.ParseWeather), "weather", enumHelp(domain.ValidWeathers))
	f.Var(newEnumValue(&answers.Temperature, "temp", domain.ParseTemperature), "temp", enumHelp(domain.ValidTemperatures))
	f.Var(newEnumValue(&answers.Air, "air", domain.ParseAirQuality), "air", enumHelp(domain.ValidAirQualities))
	f.Var(newEnumValue(&answers.Location, "location", domain.ParseLocation), "location", enumHelp(domain.ValidLocations))

	cmd.AddCommand(newCheckInShowCmd(app))

	return cmd
}

var requiredCheckInFlags = []string{"mood", "stress", "weather", "temp", "air", "location"}

func missingCheckInFlags(cmd *cobra.Command) []string {
	var missing []string
	for _, name := range requiredCheckInFlags {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	return missing
}

func newCheckInShowCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the check-in for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			c, err := app.CheckIns.Get(cmd.Context(), day)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(out, formatter.Dim("No check-in for "+formatter.HumanDay(day)+"."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatCheckIn(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")
	return cmd
}
