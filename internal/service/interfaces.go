package service

import (
	"context"

	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/alexanderramin/goalpath/internal/domain"
)

// GoalService manages the lifecycle of a learner's goal. Goals are values:
// every operation returns a new Goal and never mutates its input.
type GoalService interface {
	CreateBlank(ctx context.Context) domain.Goal
	CreateFromTemplate(ctx context.Context, template domain.Goal) domain.Goal
	Edit(ctx context.Context, goal domain.Goal, patch domain.GoalPatch) (domain.Goal, error)
	Confirm(ctx context.Context, goal domain.Goal) domain.Goal
	Submit(ctx context.Context, goal domain.Goal) (domain.Goal, clarity.Advice, error)
}

type TemplateService interface {
	Lookup(ctx context.Context, id string) (domain.Goal, error)
	Get(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]domain.TemplateSummary, error)
	Search(ctx context.Context, query string) ([]domain.TemplateSummary, error)
}

// TrackGenerator produces the ordered projects for a confirmed goal.
type TrackGenerator interface {
	Generate(ctx context.Context, goal domain.Goal) ([]domain.Project, error)
}

type TrackService interface {
	Build(ctx context.Context, goal domain.Goal) (*domain.Track, error)
	Tips(ctx context.Context) ([]domain.Tip, error)
}
