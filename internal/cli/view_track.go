package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// trackView lists the generated projects and lets the learner mark them
// started or completed.
type trackView struct {
	state  *SharedState
	track  *domain.Track
	cursor int
}

func newTrackView(state *SharedState) *trackView {
	track, _ := state.Flow.Track()
	return &trackView{state: state, track: track}
}

func (v *trackView) ID() ViewID    { return ViewTrack }
func (v *trackView) Title() string { return "Track" }

func (v *trackView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit goal")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "new goal")),
	}
}

func (v *trackView) Init() tea.Cmd { return nil }

func (v *trackView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.track == nil {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.track.Projects)-1 {
			v.cursor++
		}
	case "s":
		return v, v.mark("Started", v.track.Start)
	case "c":
		return v, v.mark("Completed", v.track.Complete)
	case "e":
		return v, editGoal()
	case "esc", "/":
		return v, startOver()
	}
	return v, nil
}

// mark applies op to the selected project and reports the outcome.
func (v *trackView) mark(verb string, op func(projectID string) error) tea.Cmd {
	if len(v.track.Projects) == 0 {
		return nil
	}
	p := v.track.Projects[v.cursor]
	if err := op(p.ID); err != nil {
		return noticeErr(err)
	}
	return notice(fmt.Sprintf("%s %q", verb, p.Title))
}

func (v *trackView) View() string {
	if v.track == nil {
		return "\n  " + formatter.Dim("No track yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(indent(strings.TrimRight(formatter.FormatTrack(v.track, v.cursor), "\n"), "  ") + "\n")
	return b.String()
}
