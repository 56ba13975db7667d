package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/goalpath/internal/catalog"
	"github.com/alexanderramin/goalpath/internal/cli"
	"github.com/alexanderramin/goalpath/internal/config"
	"github.com/alexanderramin/goalpath/internal/db"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/repository"
	"github.com/alexanderramin/goalpath/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr, cfg.SlogLevel())
	}

	// The catalog lives in memory for the life of the process.
	database, err := db.OpenMemoryDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	c, err := loadCatalog(cfg.CatalogDir)
	if err != nil {
		return err
	}
	if err := service.SeedCatalog(ctx, db.NewSQLiteUnitOfWork(database), c, observer); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	// Wire repositories
	templateRepo := repository.NewSQLiteTemplateRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	tipRepo := repository.NewSQLiteTipRepo(database)

	// Wire services
	ids := domain.UUIDGenerator{}
	goals := service.NewGoalService(ids, observer)

	app := &cli.App{
		Goals:     goals,
		Templates: service.NewTemplateService(templateRepo, observer),
		Tracks: service.NewTrackService(goals,
			service.NewStaticTrackGenerator(projectRepo),
			tipRepo, ids, observer),
		Loading: cfg.Loading.TaskOptions(0),
	}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// loadCatalog reads the catalog from dir, or the embedded defaults when
// dir is empty.
func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		c, err := catalog.Load(catalog.Defaults())
		if err != nil {
			return nil, fmt.Errorf("loading embedded catalog: %w", err)
		}
		return c, nil
	}
	c, err := catalog.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", dir, err)
	}
	return c, nil
}
