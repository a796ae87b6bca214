package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/service"
)

// App holds the services and reference data used by CLI commands.
type App struct {
	Profiles    service.ProfileService
	CheckIns    service.CheckInService
	Medications service.MedicationService
	Meals       service.MealService
	Plans       service.PlanService
	Reports     service.ReportService
	Catalog     *catalog.Catalog
	Drugs       *catalog.DrugCatalog

	// IsInteractive reports whether stdin is a terminal. Forms only run when it is.
	IsInteractive func() bool
	// Now resolves "today"; nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) today() string {
	return a.now().Format(domain.DateLayout)
}

// resolveDate returns flag as a day key, or today when it is empty.
func (a *App) resolveDate(flag string) (string, error) {
	if flag == "" {
		return a.today(), nil
	}
	if err := validateOptionalDate(flag); err != nil {
		return "", fmt.Errorf("--date %q: %w", flag, err)
	}
	return flag, nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "antigravity" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "antigravity",
		Short:         "Daily exercise, meal and sleep advisor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProfileCmd(app),
		newCheckInCmd(app),
		newMedCmd(app),
		newMealCmd(app),
		newPlanCmd(app),
		newReportCmd(app),
		newCatalogCmd(app),
	)

	return root
}
