package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/repository"
)

type templateService struct {
	templates repository.TemplateRepo
	observer  UseCaseObserver
}

func NewTemplateService(templates repository.TemplateRepo, observers ...UseCaseObserver) TemplateService {
	return &templateService{
		templates: templates,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Lookup returns the catalog entry id as a template goal. Unknown ids wrap
// domain.ErrNotFound.
func (s *templateService) Lookup(ctx context.Context, id string) (goal domain.Goal, err error) {
	defer observe(ctx, s.observer, "lookup-template", time.Now().UTC(), &err, map[string]any{"template": id})

	t, err := s.Get(ctx, id)
	if err != nil {
		return domain.Goal{}, err
	}
	return t.Goal(), nil
}

func (s *templateService) Get(ctx context.Context, id string) (*domain.Template, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("template id is required: %w", domain.ErrNotFound)
	}
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("looking up template: %w", err)
	}
	return t, nil
}

func (s *templateService) List(ctx context.Context) ([]domain.TemplateSummary, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return summarize(templates), nil
}

// Search matches title or description case-insensitively. A blank query
// returns no results.
func (s *templateService) Search(ctx context.Context, query string) (results []domain.TemplateSummary, err error) {
	fields := map[string]any{"query": query}
	defer observe(ctx, s.observer, "search-templates", time.Now().UTC(), &err, fields)

	templates, err := s.templates.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching templates: %w", err)
	}
	results = summarize(templates)
	fields["result_count"] = len(results)
	return results, nil
}

func summarize(templates []*domain.Template) []domain.TemplateSummary {
	out := make([]domain.TemplateSummary, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.Summary())
	}
	return out
}
