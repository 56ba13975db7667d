package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/goalpath/internal/catalog"
	"github.com/alexanderramin/goalpath/internal/db"
	"github.com/alexanderramin/goalpath/internal/repository"
)

// SeedCatalog validates c and writes it to the catalog store in a single
// transaction. Nothing is stored when validation or any insert fails.
func SeedCatalog(ctx context.Context, uow db.UnitOfWork, c *catalog.Catalog, observers ...UseCaseObserver) (err error) {
	fields := map[string]any{
		"templates": len(c.Templates),
		"projects":  len(c.Projects),
		"tips":      len(c.Tips),
	}
	defer observe(ctx, useCaseObserverOrNoop(observers), "seed-catalog", time.Now().UTC(), &err, fields)

	if errs := catalog.Validate(c); len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}

	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTemplates := repository.NewSQLiteTemplateRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txTips := repository.NewSQLiteTipRepo(tx)

		for _, t := range c.TemplateEntries() {
			if err := txTemplates.Create(ctx, t); err != nil {
				return fmt.Errorf("seeding template %q: %w", t.ID, err)
			}
		}
		for i := range c.Projects {
			if err := txProjects.Create(ctx, i+1, &c.Projects[i]); err != nil {
				return fmt.Errorf("seeding project %q: %w", c.Projects[i].ID, err)
			}
		}
		for i := range c.Tips {
			if err := txTips.Create(ctx, i+1, &c.Tips[i]); err != nil {
				return fmt.Errorf("seeding tip %q: %w", c.Tips[i].ID, err)
			}
		}
		return nil
	})
}
