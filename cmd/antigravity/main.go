package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/cli"
	"github.com/alexanderramin/antigravity/internal/config"
	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/engine"
	"github.com/alexanderramin/antigravity/internal/repository"
	"github.com/alexanderramin/antigravity/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Use-case logging goes to stderr so plan --json output stays clean.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLeveledUseCaseObserver(os.Stderr, cfg.LogLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// Routine catalog: embedded table unless overridden
	routines := catalog.Default()
	source := "embedded"
	if cfg.CatalogPath != "" {
		routines, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("loading routine catalog: %w", err)
		}
		source = cfg.CatalogPath
	}
	drugs := catalog.DefaultDrugs()
	logger.Debug("catalog loaded", "source", source, "routines", routines.Len(), "drugs", len(drugs.All()))

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database ready", "path", cfg.DBPath)

	// Reads go straight to the connection; writes go through the unit of work.
	store := repository.NewStore(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Profiles:    service.NewProfileService(store.Profiles, uow, observer),
		CheckIns:    service.NewCheckInService(store.CheckIns, uow, observer),
		Medications: service.NewMedicationService(store.Medications, drugs, uow, observer),
		Meals:       service.NewMealService(store.Meals, uow, observer),
		Plans:       service.NewPlanService(engine.New(routines), uow, observer),
		Reports:     service.NewReportService(store.Meals, store.Profiles, store.Medications, observer),
		Catalog:     routines,
		Drugs:       drugs,
	}

	// Forms only run on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
