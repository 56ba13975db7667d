package catalog

import "github.com/alexanderramin/goalpath/internal/domain"

// TemplateEntries converts the template section into stored entries, numbering
// them by catalog order. Call Validate first; TemplateEntries assumes the
// catalog is valid.
func (c *Catalog) TemplateEntries() []*domain.Template {
	out := make([]*domain.Template, 0, len(c.Templates))
	for i, t := range c.Templates {
		out = append(out, &domain.Template{
			ID:              t.ID,
			Position:        i + 1,
			Title:           t.Title,
			Description:     t.Description,
			Kind:            t.KindOrDefault(),
			Icon:            t.Icon,
			Text:            t.Text,
			Timeline:        t.Timeline,
			ExperienceLevel: domain.ExperienceLevel(t.ExperienceLevel),
			Clarity:         t.ClarityOrDefault(),
			Metadata:        t.Metadata,
		})
	}
	return out
}
