package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/repository"
)

// StaticTrackGenerator is a placeholder generator: it ignores the goal and
// returns the catalog's canned projects in catalog order.
type StaticTrackGenerator struct {
	projects repository.ProjectRepo
}

func NewStaticTrackGenerator(projects repository.ProjectRepo) *StaticTrackGenerator {
	return &StaticTrackGenerator{projects: projects}
}

func (g *StaticTrackGenerator) Generate(ctx context.Context, _ domain.Goal) ([]domain.Project, error) {
	stored, err := g.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(stored))
	for _, p := range stored {
		projects = append(projects, *p)
	}
	return projects, nil
}

type trackService struct {
	goals     GoalService
	generator TrackGenerator
	tips      repository.TipRepo
	ids       domain.IDGenerator
	observer  UseCaseObserver
}

func NewTrackService(
	goals GoalService,
	generator TrackGenerator,
	tips repository.TipRepo,
	ids domain.IDGenerator,
	observers ...UseCaseObserver,
) TrackService {
	return &trackService{
		goals:     goals,
		generator: generator,
		tips:      tips,
		ids:       ids,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Build confirms goal and generates its track. The generator may take as
// long as it likes; cancelling ctx abandons the build.
func (s *trackService) Build(ctx context.Context, goal domain.Goal) (track *domain.Track, err error) {
	fields := map[string]any{"goal": domain.DisplayID(goal.ID)}
	defer observe(ctx, s.observer, "build-track", time.Now().UTC(), &err, fields)

	if err = goal.Validate(); err != nil {
		return nil, err
	}
	confirmed := s.goals.Confirm(ctx, goal)

	projects, err := s.generator.Generate(ctx, confirmed)
	if err != nil {
		return nil, fmt.Errorf("generating track: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	track = domain.NewTrack(s.ids.NewID(), confirmed, projects)
	fields["track"] = domain.DisplayID(track.ID)
	fields["project_count"] = len(projects)
	return track, nil
}

// Tips returns the loading-screen carousel content in catalog order.
func (s *trackService) Tips(ctx context.Context) ([]domain.Tip, error) {
	stored, err := s.tips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tips: %w", err)
	}
	tips := make([]domain.Tip, 0, len(stored))
	for _, t := range stored {
		tips = append(tips, *t)
	}
	return tips, nil
}
