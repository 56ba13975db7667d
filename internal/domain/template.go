package domain

// TemplateMetadata carries the listing details shown for project-type
// search results.
type TemplateMetadata struct {
	Platform        string   `json:"platform,omitempty" yaml:"platform,omitempty"`
	Type            string   `json:"type,omitempty" yaml:"type,omitempty"`
	CompletionCount float64  `json:"completion_count,omitempty" yaml:"completion_count,omitempty"`
	IsPro           bool     `json:"is_pro,omitempty" yaml:"is_pro,omitempty"`
	UserAvatars     []string `json:"user_avatars,omitempty" yaml:"user_avatars,omitempty"`
}

// Template is a stored catalog entry. Position is its 1-based place in
// catalog order.
type Template struct {
	ID              string
	Position        int
	Title           string
	Description     string
	Kind            TemplateKind
	Icon            string
	Text            string
	Timeline        Duration
	ExperienceLevel ExperienceLevel
	Clarity         float64
	Metadata        *TemplateMetadata
}

// Goal returns the catalog entry as a template goal.
func (t *Template) Goal() Goal {
	return Goal{
		ID:   t.ID,
		Text: t.Text,
		Criteria: GoalCriteria{
			Timeline:        t.Timeline,
			ExperienceLevel: t.ExperienceLevel,
			Clarity:         t.Clarity,
		},
		IsTemplate: true,
	}
}

// Summary returns the listing shown on the search screen.
func (t *Template) Summary() TemplateSummary {
	return TemplateSummary{
		Position:        t.Position,
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Kind:            t.Kind,
		Icon:            t.Icon,
		Timeline:        t.Timeline,
		ExperienceLevel: t.ExperienceLevel,
		Metadata:        t.Metadata,
	}
}

// TemplateSummary is a catalog listing as shown on the search screen.
type TemplateSummary struct {
	Position        int
	ID              string
	Title           string
	Description     string
	Kind            TemplateKind
	Icon            string
	Timeline        Duration
	ExperienceLevel ExperienceLevel
	Metadata        *TemplateMetadata
}
