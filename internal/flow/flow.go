// Package flow is the screen state machine that moves a learner from
// search to a generated track.
package flow

import (
	"fmt"

	"github.com/alexanderramin/goalpath/internal/domain"
)

type Screen int

const (
	Search Screen = iota
	Template
	Create
	Confirm
	Loading
	Track
)

var screenNames = map[Screen]string{
	Search:   "search",
	Template: "template",
	Create:   "create",
	Confirm:  "confirm",
	Loading:  "loading",
	Track:    "track",
}

func (s Screen) String() string {
	if n, ok := screenNames[s]; ok {
		return n
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// NeedsGoal reports whether the screen can only be shown for a goal.
func (s Screen) NeedsGoal() bool {
	switch s {
	case Template, Create, Confirm, Loading, Track:
		return true
	}
	return false
}

// transitions lists the legal moves. Search is reachable from anywhere
// and is handled separately.
var transitions = map[Screen][]Screen{
	Search:   {Template, Create},
	Template: {Confirm},
	Create:   {Confirm},
	Confirm:  {Template, Create, Loading},
	Loading:  {Track},
	Track:    {Template, Create},
}

// CanGo reports whether from -> to is a legal transition.
func CanGo(from, to Screen) bool {
	if to == Search {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// EditTarget picks the form used to edit goal: the template refine form
// for a template-derived goal, the create form otherwise.
func EditTarget(goal domain.Goal) Screen {
	if goal.TemplateDerived() {
		return Template
	}
	return Create
}

// TransitionError reports an illegal move.
type TransitionError struct {
	From, To Screen
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot go from %s to %s", e.From, e.To)
}

// Machine tracks the current screen and the goal in progress. It is not
// safe for concurrent use; the shell drives it from its update loop.
type Machine struct {
	screen Screen
	goal   *domain.Goal
	track  *domain.Track
}

// New returns a machine on the Search screen.
func New() *Machine {
	return &Machine{screen: Search}
}

func (m *Machine) Screen() Screen { return m.screen }

// Goal returns the goal in progress, if any.
func (m *Machine) Goal() (domain.Goal, bool) {
	if m.goal == nil {
		return domain.Goal{}, false
	}
	return *m.goal, true
}

func (m *Machine) Track() (*domain.Track, bool) {
	return m.track, m.track != nil
}

// SetGoal records the goal being refined, confirmed or generated.
func (m *Machine) SetGoal(g domain.Goal) {
	m.goal = &g
}

// SetTrack records the generated track shown on the Track screen.
func (m *Machine) SetTrack(t *domain.Track) {
	m.track = t
}

// Go moves to target. Illegal moves return a *TransitionError and leave
// the machine unchanged. Moving to a goal screen without a goal (or to
// Track without a track) redirects to Search and returns an error wrapping
// domain.ErrNotFound.
func (m *Machine) Go(target Screen) error {
	if !CanGo(m.screen, target) {
		return &TransitionError{From: m.screen, To: target}
	}
	if target == Search {
		m.reset()
		return nil
	}
	if target.NeedsGoal() && m.goal == nil {
		m.reset()
		return fmt.Errorf("%s screen: goal: %w", target, domain.ErrNotFound)
	}
	if target == Track && m.track == nil {
		m.reset()
		return fmt.Errorf("%s screen: track: %w", target, domain.ErrNotFound)
	}
	if target != Track {
		m.track = nil
	}
	m.screen = target
	return nil
}

// Edit returns to the form that fits the current goal.
func (m *Machine) Edit() error {
	if m.goal == nil {
		m.reset()
		return fmt.Errorf("edit: goal: %w", domain.ErrNotFound)
	}
	return m.Go(EditTarget(*m.goal))
}

// reset starts over on Search with nothing selected.
func (m *Machine) reset() {
	m.screen = Search
	m.goal = nil
	m.track = nil
}
