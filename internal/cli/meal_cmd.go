package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/antigravity/internal/cli/formatter"
	"github.com/alexanderramin/antigravity/internal/domain"
)

func newMealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "meal",
		Aliases: []string{"meals"},
		Short:   "Log what you ate; the next meal is corrected from the latest log",
	}

	cmd.AddCommand(
		newMealLogCmd(app),
		newMealListCmd(app),
		newMealEditCmd(app),
		newMealRemoveCmd(app),
	)

	return cmd
}

func newMealLogCmd(app *App) *cobra.Command {
	var (
		mealType domain.MealType
		tags     []domain.MealTag
		portion  domain.PortionSize
		kcal     int
		date     string
		at       string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a meal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			m := &domain.MealLog{
				Date:     day,
				MealType: mealType,
				Tags:     tags,
				Portion:  portion,
				Notes:    notes,
			}
			if cmd.Flags().Changed("kcal") {
				m.EstimatedCalories = &kcal
			}
			if at != "" {
				loggedAt, err := mealTime(day, at)
				if err != nil {
					return err
				}
				m.LoggedAt = loggedAt
			} else if day != app.today() {
				// Back-filled days default to noon.
				m.LoggedAt, _ = mealTime(day, "12:00")
			} else {
				m.LoggedAt = app.now()
			}

			if err := app.Meals.Log(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s at %s %s\n",
				formatter.Bold(string(m.MealType)), formatter.ClockOf(m.LoggedAt), formatter.TruncID(m.ID))
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(newEnumValue(&mealType, "meal-type", domain.ParseMealType), "type", "Meal type ("+enumHelp(domain.ValidMealTypes)+")")
	f.Var(newEnumSliceValue(&tags, "tag", domain.ParseMealTag), "tag", "Meal tag, repeatable ("+enumHelp(domain.ValidMealTags)+")")
	f.Var(newEnumValue(&portion, "portion", parseIn("portion", validPortions)), "portion", "Portion ("+enumHelp(validPortions)+", default medium)")
	f.IntVar(&kcal, "kcal", 0, "Estimated calories")
	f.StringVar(&date, "date", "", "Day of the meal (YYYY-MM-DD, default today)")
	f.StringVar(&at, "at", "", "Time eaten (HH:MM, default now)")
	f.StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

// mealTime combines a day key and an HH:MM clock in local time.
func mealTime(day, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateLayout+" "+domain.ClockLayout, day+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at %q: use HH:MM format", clock)
	}
	return t, nil
}

func newMealListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meals for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			meals, err := app.Meals.ListByDate(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMeals(day, meals))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to list (YYYY-MM-DD, default today)")
	return cmd
}

func newMealEditCmd(app *App) *cobra.Command {
	var (
		date      string
		moveTo    string
		mealType  domain.MealType
		tags      []domain.MealTag
		clearTags bool
		portion   domain.PortionSize
		kcal      int
		at        string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Correct a logged meal by ID or ID prefix",
		Long: `Correct a logged meal. Only the flags you pass are applied.
--date names the day the meal is logged on; --move-to files it under another
day and keeps its clock time unless --at is also given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			changed := false
			for _, name := range []string{"move-to", "type", "tag", "clear-tags", "portion", "kcal", "at", "notes"} {
				changed = changed || f.Changed(name)
			}
			if !changed {
				return errors.New("nothing to change: pass at least one of --type, --tag, --clear-tags, --portion, --kcal, --at, --notes or --move-to")
			}

			ctx := cmd.Context()
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			m, err := findMeal(ctx, app, day, args[0])
			if err != nil {
				return err
			}

			if f.Changed("move-to") {
				if err := validateOptionalDate(moveTo); err != nil || moveTo == "" {
					return fmt.Errorf("--move-to %q: use YYYY-MM-DD format", moveTo)
				}
				if at == "" {
					at = formatter.ClockOf(m.LoggedAt)
				}
				m.Date = moveTo
			}
			if at != "" {
				if m.LoggedAt, err = mealTime(m.Date, at); err != nil {
					return err
				}
			}
			if f.Changed("type") {
				m.MealType = mealType
			}
			switch {
			case clearTags:
				m.Tags = nil
			case f.Changed("tag"):
				m.Tags = tags
			}
			if f.Changed("portion") {
				m.Portion = portion
			}
			if f.Changed("kcal") {
				m.EstimatedCalories = &kcal
			}
			if f.Changed("notes") {
				m.Notes = notes
			}

			if err := app.Meals.Update(ctx, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s on %s %s\n",
				formatter.Bold(string(m.MealType)), formatter.HumanDay(m.Date), formatter.TruncID(m.ID))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Day the meal was logged (YYYY-MM-DD, default today)")
	f.StringVar(&moveTo, "move-to", "", "File the meal under another day (YYYY-MM-DD)")
	f.Var(newEnumValue(&mealType, "meal-type", domain.ParseMealType), "type", "Meal type ("+enumHelp(domain.ValidMealTypes)+")")
	f.Var(newEnumSliceValue(&tags, "tag", domain.ParseMealTag), "tag", "Replace the tags, repeatable ("+enumHelp(domain.ValidMealTags)+")")
	f.BoolVar(&clearTags, "clear-tags", false, "Remove every tag")
	f.Var(newEnumValue(&portion, "portion", parseIn("portion", validPortions)), "portion", "Portion ("+enumHelp(validPortions)+")")
	f.IntVar(&kcal, "kcal", 0, "Estimated calories")
	f.StringVar(&at, "at", "", "Time eaten (HH:MM)")
	f.StringVar(&notes, "notes", "", "Free-form notes")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")

	return cmd
}

func newMealRemoveCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a logged meal by ID or ID prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			m, err := findMeal(ctx, app, day, args[0])
			if err != nil {
				return err
			}
			if err := app.Meals.Delete(ctx, m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed meal %s\n", formatter.TruncID(m.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day the meal was logged (YYYY-MM-DD, default today)")
	return cmd
}

// findMeal resolves an ID or unique ID prefix among the meals logged on day.
func findMeal(ctx context.Context, app *App, day, input string) (*domain.MealLog, error) {
	meals, err := app.Meals.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.MealLog, len(meals))
	ids := make([]string, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
		byID[m.ID] = m
	}
	id, err := resolveByPrefix("meal", input, ids)
	if err != nil {
		return nil, err
	}
	return byID[id], nil
}
