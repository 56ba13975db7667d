package cli

import (
	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/alexanderramin/goalpath/internal/flow"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App  *App
	Flow *flow.Machine

	// Advice is the clarity advice from the last submitted goal. The
	// Confirm screen shows its tips when it warns.
	Advice *clarity.Advice

	// Terminal dimensions
	Width  int
	Height int
}

// ClearGoalContext forgets everything tied to the goal in progress.
func (s *SharedState) ClearGoalContext() {
	s.Advice = nil
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints) and the notice line.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the usable width for wrapped text.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return 72
	}
	return max(min(s.Width-4, 96), 20)
}
