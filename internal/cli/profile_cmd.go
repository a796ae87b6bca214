package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/antigravity/internal/cli/formatter"
	"github.com/alexanderramin/antigravity/internal/contract"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
)

const noProfileHint = "No profile yet. Run `antigravity profile setup` or `antigravity profile set --goal ...`."

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your health profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileSetupCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(noProfileHint))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var (
		goal           domain.Goal
		diseases       []domain.Disease
		noDiseases     bool
		bedtime        string
		wakeup         string
		shiftWorker    bool
		height, weight float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields; creates the profile when --goal is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var u contract.ProfileUpdate
			if f.Changed("goal") {
				u.Goal = &goal
			}
			if noDiseases {
				none := []domain.Disease{}
				u.Diseases = &none
			} else if f.Changed("disease") {
				u.Diseases = &diseases
			}
			if f.Changed("bedtime") {
				u.UsualBedtime = &bedtime
			}
			if f.Changed("wakeup") {
				u.UsualWakeup = &wakeup
			}
			if f.Changed("shift-worker") {
				u.IsShiftWorker = &shiftWorker
			}
			if f.Changed("height") {
				u.HeightCm = &height
			}
			if f.Changed("weight") {
				u.WeightKg = &weight
			}
			if u.IsEmpty() {
				return fmt.Errorf("nothing to change; pass at least one flag (see --help)")
			}

			p, err := applyProfileUpdate(cmd.Context(), app, u)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(newEnumValue(&goal, "goal", domain.ParseGoal), "goal", "Goal ("+enumHelp(domain.ValidGoals)+")")
	f.Var(newEnumSliceValue(&diseases, "disease", domain.ParseDisease), "disease", "Condition, repeatable ("+enumHelp(domain.ValidDiseases)+")")
	f.BoolVar(&noDiseases, "no-diseases", false, "Clear the condition list")
	f.StringVar(&bedtime, "bedtime", "", "Usual bedtime (HH:MM, empty to clear)")
	f.StringVar(&wakeup, "wakeup", "", "Usual wake-up time (HH:MM, empty to clear)")
	f.BoolVar(&shiftWorker, "shift-worker", false, "Whether you work shifts")
	f.Float64Var(&height, "height", 0, "Height in cm")
	f.Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.MarkFlagsMutuallyExclusive("disease", "no-diseases")

	return cmd
}

// applyProfileUpdate edits the stored profile, or creates one when none
// exists and the update names a goal.
func applyProfileUpdate(ctx context.Context, app *App, u contract.ProfileUpdate) (*domain.UserProfile, error) {
	_, err := app.Profiles.Get(ctx)
	if err == nil {
		return app.Profiles.Update(ctx, u)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if u.Goal == nil {
		return nil, fmt.Errorf("no profile yet: --goal is required to create one")
	}

	p := &domain.UserProfile{Goal: *u.Goal}
	if u.Diseases != nil {
		p.Diseases = append(p.Diseases, *u.Diseases...)
	}
	p.SleepProfile = domain.SleepProfile{
		UsualBedtime:  deref(u.UsualBedtime),
		UsualWakeup:   deref(u.UsualWakeup),
		IsShiftWorker: domain.BoolFromPtrWithDefault(false, u.IsShiftWorker),
	}
	p.InBody = domain.InBody{
		HeightCm: domain.Float64FromPtrWithDefault(0, u.HeightCm),
		WeightKg: domain.Float64FromPtrWithDefault(0, u.WeightKg),
	}
	if err := app.Profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func newProfileSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Answer a few questions to create or redo your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("profile setup needs a terminal; use `antigravity profile set` instead")
			}
			ctx := cmd.Context()

			existing, err := app.Profiles.Get(ctx)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			answers := newProfileAnswers(existing)
			if err := profileSetupForm(answers).Run(); err != nil {
				return err
			}

			p, err := answers.toProfile()
			if err != nil {
				return err
			}
			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
