package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/flow"
	"github.com/alexanderramin/goalpath/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// goalFormFields are the values bound to the goal form.
type goalFormFields struct {
	text     string
	timeline string
	unit     domain.TimeUnit
	level    domain.ExperienceLevel
}

func fieldsFromGoal(g domain.Goal) *goalFormFields {
	return &goalFormFields{
		text:     g.Text,
		timeline: strconv.Itoa(g.Criteria.Timeline.Value),
		unit:     g.Criteria.Timeline.Unit,
		level:    g.Criteria.ExperienceLevel,
	}
}

// patch turns the form values into a full edit. The timeline value has
// already passed validatePositiveInt; parsing again keeps a bad value from
// reaching the service as zero.
func (f *goalFormFields) patch() domain.GoalPatch {
	text := strings.TrimSpace(f.text)
	timeline := domain.Duration{Value: parsePositiveInt(f.timeline, 0), Unit: f.unit}
	level := f.level
	return domain.GoalPatch{Text: &text, Timeline: &timeline, ExperienceLevel: &level}
}

// goalFormRejectedMsg reports a goal that failed Edit or Submit. The form
// stays open with the learner's values.
type goalFormRejectedMsg struct {
	err    error
	advice *clarity.Advice
}

// applyGoalForm edits goal with the form values and passes the result
// through the submit gate. It returns the message that moves on to
// Confirm, or a goalFormRejectedMsg.
func applyGoalForm(app *App, goal domain.Goal, fields *goalFormFields) tea.Msg {
	ctx := context.Background()
	edited, err := app.Goals.Edit(ctx, goal, fields.patch())
	if err != nil {
		return goalFormRejectedMsg{err: err}
	}
	submitted, advice, err := app.Goals.Submit(ctx, edited)
	if err != nil {
		return goalFormRejectedMsg{err: err, advice: &advice}
	}
	return navigateMsg{screen: flow.Confirm, goal: &submitted, advice: &advice}
}

// goalFormView is the Template (refine) or Create form. It wraps a
// huh.Form and shows the clarity the goal would have as the text changes.
type goalFormView struct {
	state    *SharedState
	goal     domain.Goal
	refine   bool
	fields   *goalFormFields
	form     *huh.Form
	err      error
	rejected *clarity.Advice
	// applying is set once the completed form has been handed to
	// applyGoalForm, until the outcome arrives.
	applying bool
}

func newGoalFormView(state *SharedState, refine bool) *goalFormView {
	goal, _ := state.Flow.Goal()
	v := &goalFormView{
		state:  state,
		goal:   goal,
		refine: refine,
		fields: fieldsFromGoal(goal),
	}
	v.form = v.buildForm()
	return v
}

func (v *goalFormView) buildForm() *huh.Form {
	textTitle := "What do you want to learn?"
	if v.refine {
		textTitle = "Your goal"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(textTitle).
				Placeholder("e.g. Learn React by building a portfolio of web apps").
				CharLimit(280).
				Value(&v.fields.text).
				Validate(validateGoalText),
			huh.NewInput().
				Title("Timeline").
				Placeholder("12").
				Value(&v.fields.timeline).
				Validate(validatePositiveInt),
			huh.NewSelect[domain.TimeUnit]().
				Title("Unit").
				Options(unitOptions()...).
				Value(&v.fields.unit),
			huh.NewSelect[domain.ExperienceLevel]().
				Title("Experience level").
				Options(levelOptions()...).
				Value(&v.fields.level),
		),
	).WithTheme(goalpathHuhTheme()).WithShowHelp(false).WithWidth(v.state.ContentWidth())
}

func (v *goalFormView) ID() ViewID { return ViewGoalForm }

func (v *goalFormView) Title() string {
	if v.refine {
		return "Refine Your Goal"
	}
	return "Create Your Goal"
}

func (v *goalFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "start over")),
	}
}

func (v *goalFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *goalFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goalFormRejectedMsg:
		v.err = msg.err
		v.rejected = msg.advice
		v.applying = false
		v.form = v.buildForm()
		return v, v.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, startOver()
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.applying {
		v.applying = true
		app, goal, fields := v.state.App, v.goal, v.fields
		return v, tea.Batch(cmd, func() tea.Msg {
			return applyGoalForm(app, goal, fields)
		})
	}
	return v, cmd
}

// previewClarity is the score the goal would get if submitted now.
func (v *goalFormView) previewClarity() float64 {
	return service.EditedClarity(v.goal, strings.TrimSpace(v.fields.text))
}

func (v *goalFormView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	if v.refine {
		b.WriteString("  " + formatter.Dim("Adjust the template to fit you. Change the wording to rescore it.") + "\n\n")
	} else {
		b.WriteString("  " + formatter.Dim("Be specific: what you want to learn, how, and with which technology.") + "\n\n")
	}

	b.WriteString(indent(v.form.View(), "  ") + "\n\n")

	score := v.previewClarity()
	b.WriteString("  " + formatter.Dim("Goal clarity ") + formatter.RenderClarityBar(score, 20) + "\n")

	advice := clarity.Advise(score)
	if v.rejected != nil {
		advice = *v.rejected
	}
	if tips := formatter.FormatAdvice(advice); tips != "" {
		b.WriteString("\n" + indent(strings.TrimRight(tips, "\n"), "  ") + "\n")
	}
	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("✖ "+v.err.Error()) + "\n")
	}
	return b.String()
}
