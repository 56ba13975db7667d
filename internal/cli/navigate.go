package cli

import (
	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/flow"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request screen transitions.
// The appModel handles these in its Update method and is the only place
// the flow machine is moved.

// navigateMsg moves the flow machine to screen, first recording goal,
// advice and track when set.
type navigateMsg struct {
	screen flow.Screen
	goal   *domain.Goal
	advice *clarity.Advice
	track  *domain.Track
}

// editGoalMsg returns to the form that fits the current goal.
type editGoalMsg struct{}

// noticeMsg carries a one-line message shown above the status bar until
// the next key press.
type noticeMsg struct {
	text string
	err  bool
}

type quitMsg struct{}

func navigate(screen flow.Screen) tea.Cmd {
	return func() tea.Msg { return navigateMsg{screen: screen} }
}

func startOver() tea.Cmd {
	return navigate(flow.Search)
}

func editGoal() tea.Cmd {
	return func() tea.Msg { return editGoalMsg{} }
}

func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

func noticeErr(err error) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: err.Error(), err: true} }
}
