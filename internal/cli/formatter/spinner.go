package formatter

import (
	"fmt"
	"io"
	"sync"
)

// Braille dot spinner frames.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner redraws a single status line on w. It has no clock of its own:
// each Render call advances one frame, so the caller's ticks pace it.
type Spinner struct {
	mu    sync.Mutex
	w     io.Writer
	frame int
	drawn bool
}

func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Render advances the animation and redraws the line with the progress
// percentage and message.
func (s *Spinner) Render(progress int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	s.frame++
	fmt.Fprintf(s.w, "\r\033[K  %s %3d%% %s", StylePurple.Render(frame), progress, Dim(message))
	s.drawn = true
}

// Clear erases the spinner line if anything was drawn.
func (s *Spinner) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawn {
		fmt.Fprint(s.w, "\r\033[K")
		s.drawn = false
	}
}
