package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/goalpath/internal/flow"
	"github.com/alexanderramin/goalpath/internal/teatest"
)

// TestDriver wraps teatest.Driver with goalpath-specific inspection
// methods. It reaches into appModel internals (view stack, shared state,
// notice) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App, sets the terminal
// size and drains Init(). The command timeout covers the catalog queries
// and the millisecond ticks of fastLoading, while cursor blinks are still
// skipped.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40), teatest.WithCmdTimeout(50*time.Millisecond))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Search types query into the search box.
func (d *TestDriver) Search(query string) {
	d.T.Helper()
	d.Type(query)
}

// SubmitForm presses Enter through every field of the goal form: text,
// timeline, unit and level. The last Enter completes the form.
func (d *TestDriver) SubmitForm() {
	d.T.Helper()
	for range 4 {
		d.PressEnter()
	}
}

// ── goalpath-specific inspection ─────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveView returns the top view on the stack.
func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Screen returns the flow machine's current screen.
func (d *TestDriver) Screen() flow.Screen {
	return d.State().Flow.Screen()
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Notice returns the transient notice and whether it is an error.
func (d *TestDriver) Notice() (string, bool) {
	m := d.appModel()
	return m.notice, m.noticeErr
}
