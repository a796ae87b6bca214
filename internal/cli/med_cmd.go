package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/antigravity/internal/cli/formatter"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
)

func newMedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "med",
		Aliases: []string{"meds", "medication"},
		Short:   "Manage the medications that feed exercise safety checks",
	}

	cmd.AddCommand(
		newMedListCmd(app),
		newMedAddCmd(app),
		newMedSearchCmd(app),
		newMedEditCmd(app),
		newMedRemoveCmd(app),
	)

	return cmd
}

func newMedListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered medications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meds, err := app.Medications.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMedications(meds))
			return nil
		},
	}
}

func newMedAddCmd(app *App) *cobra.Command {
	var (
		tags      []domain.MedicationTag
		manual    bool
		dosage    string
		frequency string
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Register a medication",
		Long: `Register a medication. Names found in the drug table get their safety
tags filled in automatically. Use --tag or --manual to enter one by hand.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			m := &domain.MedicationEntry{
				Name:      strings.Join(args, " "),
				Dosage:    dosage,
				Frequency: frequency,
			}

			var err error
			if manual || len(tags) > 0 {
				m.Tags = tags
				m.ConfirmedByUser = true
				err = app.Medications.Add(ctx, m)
			} else {
				err = app.Medications.AddFromCatalog(ctx, m)
				if errors.Is(err, repository.ErrNotFound) {
					fmt.Fprintf(out, "%s\n", formatter.Dim(fmt.Sprintf("%q is not in the drug table; saving it without safety tags.", m.Name)))
					err = app.Medications.Add(ctx, m)
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Added %s %s\n", formatter.Bold(m.Name), formatter.TruncID(m.ID))
			if len(m.Tags) > 0 {
				fmt.Fprintf(out, "Safety tags: %s\n", formatter.StyleYellow.Render(formatter.JoinTags(m.Tags)))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(newEnumSliceValue(&tags, "tag", domain.ParseMedicationTag), "tag", "Safety tag, repeatable ("+enumHelp(domain.ValidMedicationTags)+")")
	f.BoolVar(&manual, "manual", false, "Skip the drug table lookup")
	f.StringVar(&dosage, "dosage", "", "Dosage, e.g. 5mg")
	f.StringVar(&frequency, "frequency", "", "How often, e.g. daily")

	return cmd
}

func newMedSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the drug table by English or Korean name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hits := app.Medications.SearchDrugs(strings.Join(args, " "))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDrugs(hits))
			return nil
		},
	}
}

func newMedEditCmd(app *App) *cobra.Command {
	var (
		dosage    string
		frequency string
		tags      []domain.MedicationTag
		clearTags bool
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the dosage, frequency or safety tags of a medication",
		Long: `Change a registered medication. Only the flags you pass are applied.
Replacing the safety tags of a drug-table entry unlinks it from the table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if !f.Changed("dosage") && !f.Changed("frequency") && !f.Changed("tag") && !clearTags {
				return errors.New("nothing to change: pass --dosage, --frequency, --tag or --clear-tags")
			}
			ctx := cmd.Context()
			m, err := findMedication(ctx, app, args[0])
			if err != nil {
				return err
			}
			if f.Changed("dosage") {
				m.Dosage = dosage
			}
			if f.Changed("frequency") {
				m.Frequency = frequency
			}
			switch {
			case clearTags:
				m.Tags = nil
			case f.Changed("tag"):
				m.Tags = tags
			}

			if err := app.Medications.Update(ctx, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", formatter.Bold(m.Name), formatter.TruncID(m.ID))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&dosage, "dosage", "", "Dosage, e.g. 5mg")
	f.StringVar(&frequency, "frequency", "", "How often it is taken")
	f.Var(newEnumSliceValue(&tags, "tag", domain.ParseMedicationTag), "tag", "Replace the safety tags, repeatable ("+enumHelp(domain.ValidMedicationTags)+")")
	f.BoolVar(&clearTags, "clear-tags", false, "Remove every safety tag")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")

	return cmd
}

func newMedRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a medication by ID or ID prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := findMedication(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Medications.Delete(ctx, m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed medication %s\n", formatter.TruncID(m.ID))
			return nil
		},
	}
}

// findMedication resolves an ID or unique ID prefix among registered medications.
func findMedication(ctx context.Context, app *App, input string) (*domain.MedicationEntry, error) {
	meds, err := app.Medications.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.MedicationEntry, len(meds))
	ids := make([]string, len(meds))
	for i, m := range meds {
		ids[i] = m.ID
		byID[m.ID] = m
	}
	id, err := resolveByPrefix("medication", input, ids)
	if err != nil {
		return nil, err
	}
	return byID[id], nil
}
