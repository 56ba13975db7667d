package cli

import (
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/flow"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmView shows the submitted goal for a last look before the track
// is generated.
type confirmView struct {
	state *SharedState
	goal  domain.Goal
}

func newConfirmView(state *SharedState) *confirmView {
	goal, _ := state.Flow.Goal()
	return &confirmView{state: state, goal: goal}
}

func (v *confirmView) ID() ViewID    { return ViewConfirm }
func (v *confirmView) Title() string { return "Confirm" }

func (v *confirmView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate track")),
		key.NewBinding(key.WithKeys("e", "esc"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "start over")),
	}
}

func (v *confirmView) Init() tea.Cmd { return nil }

func (v *confirmView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "enter":
		return v, navigate(flow.Loading)
	case "e", "esc":
		return v, editGoal()
	case "/":
		return v, startOver()
	}
	return v, nil
}

func (v *confirmView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("Ready to build your track?") + "\n\n")
	b.WriteString(indent(formatter.FormatGoal(v.goal), "  ") + "\n")

	if a := v.state.Advice; a != nil {
		if tips := formatter.FormatAdvice(*a); tips != "" {
			b.WriteString("\n" + indent(strings.TrimRight(tips, "\n"), "  ") + "\n")
		}
	}

	b.WriteString("\n  " + formatter.Dim("Press enter to generate a personalized project track.") + "\n")
	return b.String()
}
