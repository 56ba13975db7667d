package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/goalpath/internal/domain"
)

// Validate checks a merged catalog for structural errors.
// Returns a slice of errors (empty if valid).
func Validate(c *Catalog) []error {
	var errs []error

	if len(c.Templates) == 0 {
		errs = append(errs, fmt.Errorf("at least one template is required"))
	}
	if len(c.Projects) == 0 {
		errs = append(errs, fmt.Errorf("at least one project is required"))
	}

	templateIDs := map[string]bool{}
	for i, t := range c.Templates {
		if err := domain.ValidateCatalogID(t.ID); err != nil {
			errs = append(errs, fmt.Errorf("template[%d]: %w", i, err))
		}
		if templateIDs[t.ID] {
			errs = append(errs, fmt.Errorf("template[%d]: duplicate id %q", i, t.ID))
		}
		templateIDs[t.ID] = true
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("template[%d]: title is required", i))
		}
		if t.Text == "" {
			errs = append(errs, fmt.Errorf("template[%d]: text is required", i))
		}
		switch t.KindOrDefault() {
		case domain.KindTemplate, domain.KindProject:
		default:
			errs = append(errs, fmt.Errorf("template[%d]: unknown kind %q", i, t.Kind))
		}
		if err := t.Timeline.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("template[%d]: %w", i, err))
		}
		if !domain.ExperienceLevel(t.ExperienceLevel).Valid() {
			errs = append(errs, fmt.Errorf("template[%d]: unknown experience level %q", i, t.ExperienceLevel))
		}
		if cl := t.ClarityOrDefault(); cl < 0 || cl > 1 {
			errs = append(errs, fmt.Errorf("template[%d]: clarity %v outside [0,1]", i, cl))
		}
	}

	projectIDs := map[string]bool{}
	for i, p := range c.Projects {
		if err := domain.ValidateCatalogID(p.ID); err != nil {
			errs = append(errs, fmt.Errorf("project[%d]: %w", i, err))
		}
		if projectIDs[p.ID] {
			errs = append(errs, fmt.Errorf("project[%d]: duplicate id %q", i, p.ID))
		}
		projectIDs[p.ID] = true
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("project[%d]: title is required", i))
		}
		if err := p.Duration.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("project[%d]: %w", i, err))
		}
		if !p.Difficulty.Valid() {
			errs = append(errs, fmt.Errorf("project[%d]: unknown difficulty %q", i, p.Difficulty))
		}
	}

	tipIDs := map[string]bool{}
	for i, tip := range c.Tips {
		if tip.ID == "" {
			errs = append(errs, fmt.Errorf("tip[%d]: id is required", i))
		}
		if tipIDs[tip.ID] {
			errs = append(errs, fmt.Errorf("tip[%d]: duplicate id %q", i, tip.ID))
		}
		tipIDs[tip.ID] = true
		if tip.Content == "" {
			errs = append(errs, fmt.Errorf("tip[%d]: content is required", i))
		}
		switch tip.Kind {
		case domain.TipKindTip, domain.TipKindFact, domain.TipKindQuote:
		default:
			errs = append(errs, fmt.Errorf("tip[%d]: unknown type %q", i, tip.Kind))
		}
	}

	return errs
}

func joinErrors(errs []error) error {
	return errors.Join(errs...)
}
