package domain

// TemplateClarity is the clarity given to a goal seeded from a catalog
// template. Template wording is trusted, so the scorer is not run on it.
const TemplateClarity = 0.9

type GoalCriteria struct {
	Timeline        Duration        `json:"timeline" yaml:"timeline"`
	ExperienceLevel ExperienceLevel `json:"experience_level" yaml:"experience_level" validate:"oneof=beginner intermediate advanced"`
	Clarity         float64         `json:"clarity" yaml:"clarity"`
}

// Goal is a learner's stated objective. ID is assigned once and survives edits.
// IsTemplate is only true for catalog entries; a goal personalized from a
// template carries the entry's ID in TemplateID instead.
type Goal struct {
	ID         string       `json:"id"`
	Text       string       `json:"text"`
	Criteria   GoalCriteria `json:"criteria"`
	IsTemplate bool         `json:"is_template"`
	TemplateID string       `json:"template_id,omitempty"`
}

// TemplateDerived reports whether the goal was seeded from a catalog template.
func (g Goal) TemplateDerived() bool {
	return g.TemplateID != ""
}

// Validate checks the structured criteria of the goal.
func (g Goal) Validate() error {
	if err := g.Criteria.Timeline.Validate(); err != nil {
		return err
	}
	return validateStruct("", struct {
		Level ExperienceLevel `json:"experience_level" validate:"oneof=beginner intermediate advanced"`
	}{g.Criteria.ExperienceLevel})
}

// GoalPatch is a partial edit. Nil fields keep the current value.
type GoalPatch struct {
	Text            *string
	Timeline        *Duration
	ExperienceLevel *ExperienceLevel
}

// Empty reports whether the patch changes nothing.
func (p GoalPatch) Empty() bool {
	return p.Text == nil && p.Timeline == nil && p.ExperienceLevel == nil
}

// TextPatch is a convenience for a patch that only replaces the text.
func TextPatch(text string) GoalPatch {
	return GoalPatch{Text: &text}
}
