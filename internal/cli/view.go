package cli

import (
	"github.com/alexanderramin/goalpath/internal/flow"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI. The order follows the
// flow, so a later screen always has a larger ID.
type ViewID int

const (
	ViewSearch ViewID = iota
	ViewGoalForm
	ViewConfirm
	ViewLoading
	ViewTrack
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// closer is implemented by views that own background work, which must
// stop when the view leaves the stack.
type closer interface {
	Close()
}

// viewFor builds the view shown on screen.
func viewFor(state *SharedState, screen flow.Screen) View {
	switch screen {
	case flow.Template:
		return newGoalFormView(state, true)
	case flow.Create:
		return newGoalFormView(state, false)
	case flow.Confirm:
		return newConfirmView(state)
	case flow.Loading:
		return newLoadingView(state)
	case flow.Track:
		return newTrackView(state)
	default:
		return newSearchView(state)
	}
}

// viewIDFor maps a screen to the view that renders it.
func viewIDFor(screen flow.Screen) ViewID {
	switch screen {
	case flow.Template, flow.Create:
		return ViewGoalForm
	case flow.Confirm:
		return ViewConfirm
	case flow.Loading:
		return ViewLoading
	case flow.Track:
		return ViewTrack
	default:
		return ViewSearch
	}
}

// viewCapturesInput returns true if the view has its own text input and
// should receive all key events, including 'q'.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewSearch, ViewGoalForm:
		return true
	}
	return false
}
