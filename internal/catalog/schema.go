// Package catalog loads the static catalog of goal templates, canned
// projects and loading-screen tips.
//
// A catalog is one or more JSON or YAML documents, each with optional
// "templates", "projects" and "tips" sections. Sections from several
// documents are concatenated in file-name order.
package catalog

import "github.com/alexanderramin/goalpath/internal/domain"

// Catalog is the merged content of all catalog documents.
type Catalog struct {
	Templates []TemplateConfig `json:"templates,omitempty" yaml:"templates,omitempty"`
	Projects  []domain.Project `json:"projects,omitempty" yaml:"projects,omitempty"`
	Tips      []domain.Tip     `json:"tips,omitempty" yaml:"tips,omitempty"`
}

// TemplateConfig is one catalog entry. Every entry can seed a goal; Kind
// only changes how it is listed in search results.
type TemplateConfig struct {
	ID              string                   `json:"id" yaml:"id"`
	Title           string                   `json:"title" yaml:"title"`
	Description     string                   `json:"description,omitempty" yaml:"description,omitempty"`
	Kind            string                   `json:"kind,omitempty" yaml:"kind,omitempty"` // "template" (default) or "project"
	Icon            string                   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Text            string                   `json:"text" yaml:"text"`
	Timeline        domain.Duration          `json:"timeline" yaml:"timeline"`
	ExperienceLevel string                   `json:"experience_level" yaml:"experience_level"`
	Clarity         *float64                 `json:"clarity,omitempty" yaml:"clarity,omitempty"`
	Metadata        *domain.TemplateMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// defaultEntryClarity is stored for entries that do not declare a clarity.
const defaultEntryClarity = 0.8

// KindOrDefault returns the entry kind, defaulting to "template".
func (t TemplateConfig) KindOrDefault() domain.TemplateKind {
	return domain.TemplateKind(domain.CoalesceStr(t.Kind, string(domain.KindTemplate)))
}

// ClarityOrDefault returns the declared clarity or the catalog default.
func (t TemplateConfig) ClarityOrDefault() float64 {
	if t.Clarity != nil {
		return *t.Clarity
	}
	return defaultEntryClarity
}

// Merge appends the sections of other to c.
func (c *Catalog) Merge(other *Catalog) {
	c.Templates = append(c.Templates, other.Templates...)
	c.Projects = append(c.Projects, other.Projects...)
	c.Tips = append(c.Tips, other.Tips...)
}
