package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/goalpath/internal/domain"
)

var fixtureCounter atomic.Int64

func nextFixtureID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, fixtureCounter.Add(1))
}

// Template options
type TemplateOption func(*domain.Template)

func WithTemplateID(id string) TemplateOption {
	return func(t *domain.Template) {
		t.ID = id
	}
}

func WithPosition(n int) TemplateOption {
	return func(t *domain.Template) {
		t.Position = n
	}
}

func WithDescription(d string) TemplateOption {
	return func(t *domain.Template) {
		t.Description = d
	}
}

func WithTemplateText(text string) TemplateOption {
	return func(t *domain.Template) {
		t.Text = text
	}
}

func WithTemplateKind(k domain.TemplateKind) TemplateOption {
	return func(t *domain.Template) {
		t.Kind = k
	}
}

func WithTemplateTimeline(value int, unit domain.TimeUnit) TemplateOption {
	return func(t *domain.Template) {
		t.Timeline = domain.Duration{Value: value, Unit: unit}
	}
}

func WithMetadata(m *domain.TemplateMetadata) TemplateOption {
	return func(t *domain.Template) {
		t.Metadata = m
	}
}

func NewTestTemplate(title string, opts ...TemplateOption) *domain.Template {
	t := &domain.Template{
		ID:              nextFixtureID("tmpl"),
		Position:        int(fixtureCounter.Load()),
		Title:           title,
		Kind:            domain.KindTemplate,
		Text:            "Learn " + title,
		Timeline:        domain.DefaultTimeline,
		ExperienceLevel: domain.LevelBeginner,
		Clarity:         0.8,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func WithDuration(value int, unit domain.TimeUnit) ProjectOption {
	return func(p *domain.Project) {
		p.Duration = domain.Duration{Value: value, Unit: unit}
	}
}

func WithDifficulty(l domain.ExperienceLevel) ProjectOption {
	return func(p *domain.Project) {
		p.Difficulty = l
	}
}

func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:          nextFixtureID("proj"),
		Title:       title,
		Description: title + " project",
		Duration:    domain.Duration{Value: 1, Unit: domain.UnitWeeks},
		Difficulty:  domain.LevelBeginner,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestTip(kind domain.TipKind, content string) *domain.Tip {
	return &domain.Tip{
		ID:      nextFixtureID("tip"),
		Title:   string(kind),
		Content: content,
		Kind:    kind,
	}
}

// Goal options
type GoalOption func(*domain.Goal)

func WithTimeline(value int, unit domain.TimeUnit) GoalOption {
	return func(g *domain.Goal) {
		g.Criteria.Timeline = domain.Duration{Value: value, Unit: unit}
	}
}

func WithLevel(l domain.ExperienceLevel) GoalOption {
	return func(g *domain.Goal) {
		g.Criteria.ExperienceLevel = l
	}
}

func WithClarity(c float64) GoalOption {
	return func(g *domain.Goal) {
		g.Criteria.Clarity = c
	}
}

// FromTemplate marks the goal as personalized from catalog entry id.
func FromTemplate(id string) GoalOption {
	return func(g *domain.Goal) {
		g.TemplateID = id
	}
}

func NewTestGoal(text string, opts ...GoalOption) domain.Goal {
	g := domain.Goal{
		ID:   nextFixtureID("goal"),
		Text: text,
		Criteria: domain.GoalCriteria{
			Timeline:        domain.DefaultTimeline,
			ExperienceLevel: domain.LevelBeginner,
			Clarity:         0.4,
		},
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}
