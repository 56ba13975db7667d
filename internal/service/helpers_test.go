package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/goalpath/internal/catalog"
	"github.com/alexanderramin/goalpath/internal/repository"
	"github.com/alexanderramin/goalpath/internal/testutil"
	"github.com/stretchr/testify/require"
)

// newCatalogDB returns a test database seeded with the embedded catalog.
func newCatalogDB(t *testing.T) *sql.DB {
	t.Helper()
	database := testutil.NewTestDB(t)
	c, err := catalog.Load(catalog.Defaults())
	require.NoError(t, err)
	require.NoError(t, SeedCatalog(context.Background(), testutil.NewTestUoW(database), c))
	return database
}

type services struct {
	goals     GoalService
	templates TemplateService
	tracks    TrackService
	observer  *recordingObserver
}

func newServices(t *testing.T) services {
	t.Helper()
	database := newCatalogDB(t)
	obs := &recordingObserver{}
	ids := testutil.NewSequenceIDs("id")

	goals := NewGoalService(ids, obs)
	return services{
		goals:     goals,
		templates: NewTemplateService(repository.NewSQLiteTemplateRepo(database), obs),
		tracks: NewTrackService(goals,
			NewStaticTrackGenerator(repository.NewSQLiteProjectRepo(database)),
			repository.NewSQLiteTipRepo(database),
			ids, obs),
		observer: obs,
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
