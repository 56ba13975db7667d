package service

import (
	"context"
	"time"

	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/alexanderramin/goalpath/internal/domain"
)

type goalService struct {
	ids      domain.IDGenerator
	observer UseCaseObserver
}

func NewGoalService(ids domain.IDGenerator, observers ...UseCaseObserver) GoalService {
	return &goalService{
		ids:      ids,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *goalService) CreateBlank(ctx context.Context) domain.Goal {
	defer observe(ctx, s.observer, "create-blank-goal", time.Now().UTC(), nil, nil)

	return domain.Goal{
		ID: s.ids.NewID(),
		Criteria: domain.GoalCriteria{
			Timeline:        domain.DefaultTimeline,
			ExperienceLevel: domain.LevelBeginner,
			Clarity:         clarity.Score(""),
		},
	}
}

func (s *goalService) CreateFromTemplate(ctx context.Context, template domain.Goal) domain.Goal {
	defer observe(ctx, s.observer, "create-goal-from-template", time.Now().UTC(), nil,
		map[string]any{"template": template.ID})

	return domain.Goal{
		ID:   s.ids.NewID(),
		Text: template.Text,
		Criteria: domain.GoalCriteria{
			Timeline:        template.Criteria.Timeline,
			ExperienceLevel: template.Criteria.ExperienceLevel,
			Clarity:         domain.TemplateClarity,
		},
		TemplateID: template.ID,
	}
}

// Edit applies patch to a copy of goal. Clarity is rescored from the new
// text, except that a template-derived goal whose text is unchanged keeps
// its clarity.
func (s *goalService) Edit(ctx context.Context, goal domain.Goal, patch domain.GoalPatch) (edited domain.Goal, err error) {
	fields := map[string]any{"goal": domain.DisplayID(goal.ID)}
	defer observe(ctx, s.observer, "edit-goal", time.Now().UTC(), &err, fields)

	edited = goal
	edited.Text = domain.ValueOr(patch.Text, goal.Text)
	edited.Criteria.Timeline = domain.ValueOr(patch.Timeline, goal.Criteria.Timeline)
	edited.Criteria.ExperienceLevel = domain.ValueOr(patch.ExperienceLevel, goal.Criteria.ExperienceLevel)

	if err = edited.Validate(); err != nil {
		return goal, err
	}

	edited.Criteria.Clarity = EditedClarity(goal, edited.Text)
	fields["clarity"] = edited.Criteria.Clarity
	return edited, nil
}

// EditedClarity is the clarity goal would have after its text becomes
// text. Forms use it to preview the score while the learner types.
func EditedClarity(goal domain.Goal, text string) float64 {
	if goal.TemplateDerived() && text == goal.Text {
		return goal.Criteria.Clarity
	}
	return clarity.Score(text)
}

func (s *goalService) Confirm(ctx context.Context, goal domain.Goal) domain.Goal {
	defer observe(ctx, s.observer, "confirm-goal", time.Now().UTC(), nil,
		map[string]any{"goal": domain.DisplayID(goal.ID)})
	return goal
}

// Submit is the gate both goal forms pass through. A goal scoring below
// clarity.BlockBelow is rejected; otherwise the advice tells the caller
// whether to show the low-clarity warning.
func (s *goalService) Submit(ctx context.Context, goal domain.Goal) (_ domain.Goal, advice clarity.Advice, err error) {
	fields := map[string]any{"goal": domain.DisplayID(goal.ID)}
	defer observe(ctx, s.observer, "submit-goal", time.Now().UTC(), &err, fields)

	if err = goal.Validate(); err != nil {
		return goal, advice, err
	}
	advice = clarity.Advise(goal.Criteria.Clarity)
	fields["clarity"] = advice.Score
	fields["warn"] = advice.Warn
	if advice.Blocked {
		err = &domain.InvalidInputError{
			Field:  "text",
			Reason: "goal is too vague; describe what you want to learn and how",
		}
		return goal, advice, err
	}
	return goal, advice, nil
}
