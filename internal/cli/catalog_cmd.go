package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/antigravity/internal/cli/formatter"
	"github.com/alexanderramin/antigravity/internal/domain"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the routine and drug reference tables",
	}

	cmd.AddCommand(
		newCatalogRoutinesCmd(app),
		newCatalogShowCmd(app),
		newCatalogDrugsCmd(app),
	)

	return cmd
}

func newCatalogRoutinesCmd(app *App) *cobra.Command {
	var (
		category domain.Category
		goal     domain.Goal
		level    domain.Level
	)

	cmd := &cobra.Command{
		Use:   "routines",
		Short: "List routines, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var matched []domain.RoutineTemplate
			for _, r := range app.Catalog.All() {
				if category != "" && r.Category != category {
					continue
				}
				if goal != "" && r.Goal != goal {
					continue
				}
				if level != "" && r.Level != level {
					continue
				}
				matched = append(matched, r)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutineList(matched))
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(newEnumValue(&category, "category", domain.ParseCategory), "category", enumHelp(domain.ValidCategories))
	f.Var(newEnumValue(&goal, "goal", domain.ParseGoal), "goal", enumHelp(domain.ValidGoals))
	f.Var(newEnumValue(&level, "level", parseIn("level", domain.ValidLevels)), "level", enumHelp(domain.ValidLevels))

	return cmd
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a routine's phases and safety metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := app.Catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("routine not found: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRoutine(r))
			return nil
		},
	}
}

func newCatalogDrugsCmd(app *App) *cobra.Command {
	var tag domain.MedicationTag

	cmd := &cobra.Command{
		Use:   "drugs",
		Short: "List the drug table, optionally by safety tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drugs := app.Drugs.All()
			if tag != "" {
				drugs = app.Drugs.ByTag(tag)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDrugs(drugs))
			return nil
		},
	}

	cmd.Flags().Var(newEnumValue(&tag, "tag", domain.ParseMedicationTag), "tag", enumHelp(domain.ValidMedicationTags))
	return cmd
}
