package catalog

import (
	"testing"

	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/stretchr/testify/assert"
)

func validCatalog() *Catalog {
	return &Catalog{
		Templates: []TemplateConfig{{
			ID:              "1",
			Title:           "Learn React",
			Text:            "Learn React",
			Timeline:        domain.Duration{Value: 12, Unit: domain.UnitWeeks},
			ExperienceLevel: "beginner",
		}},
		Projects: []domain.Project{{
			ID:         "1",
			Title:      "Basic Todo App",
			Duration:   domain.Duration{Value: 1, Unit: domain.UnitWeeks},
			Difficulty: domain.LevelBeginner,
		}},
		Tips: []domain.Tip{{ID: "1", Content: "Practice daily", Kind: domain.TipKindTip}},
	}
}

func errorStrings(errs []error) []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return msgs
}

func TestValidate_ValidCatalog(t *testing.T) {
	assert.Empty(t, Validate(validCatalog()))
}

func TestValidate_DuplicateTemplateID(t *testing.T) {
	c := validCatalog()
	c.Templates = append(c.Templates, c.Templates[0])

	assert.Contains(t, errorStrings(Validate(c)), `template[1]: duplicate id "1"`)
}

func TestValidate_TemplateFields(t *testing.T) {
	c := validCatalog()
	c.Templates[0].Title = ""
	c.Templates[0].Text = ""
	c.Templates[0].Kind = "course"
	c.Templates[0].ExperienceLevel = "guru"
	c.Templates[0].Timeline.Value = 0

	msgs := errorStrings(Validate(c))
	assert.Contains(t, msgs, "template[0]: title is required")
	assert.Contains(t, msgs, "template[0]: text is required")
	assert.Contains(t, msgs, `template[0]: unknown kind "course"`)
	assert.Contains(t, msgs, `template[0]: unknown experience level "guru"`)
	assert.Len(t, msgs, 5)
}

func TestValidate_ClarityRange(t *testing.T) {
	c := validCatalog()
	bad := 1.5
	c.Templates[0].Clarity = &bad

	assert.Contains(t, errorStrings(Validate(c)), "template[0]: clarity 1.5 outside [0,1]")
}

func TestValidate_ProjectFields(t *testing.T) {
	c := validCatalog()
	c.Projects = append(c.Projects, domain.Project{ID: "1", Duration: domain.Duration{Value: 1, Unit: "years"}, Difficulty: "expert"})

	msgs := errorStrings(Validate(c))
	assert.Contains(t, msgs, `project[1]: duplicate id "1"`)
	assert.Contains(t, msgs, "project[1]: title is required")
	assert.Contains(t, msgs, `project[1]: unknown difficulty "expert"`)
}

func TestValidate_TipFields(t *testing.T) {
	c := validCatalog()
	c.Tips = append(c.Tips, domain.Tip{ID: "", Kind: "joke"})

	msgs := errorStrings(Validate(c))
	assert.Contains(t, msgs, "tip[1]: id is required")
	assert.Contains(t, msgs, "tip[1]: content is required")
	assert.Contains(t, msgs, `tip[1]: unknown type "joke"`)
}
