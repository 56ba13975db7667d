package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/flow"
	"github.com/alexanderramin/goalpath/internal/loading"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type loadingTipsMsg struct {
	tips []domain.Tip
	err  error
}

// loadingEventMsg is one event of task, or closed once its channel is
// drained.
type loadingEventMsg struct {
	task   *loading.Task
	event  loading.Event
	closed bool
}

type trackBuiltMsg struct {
	track *domain.Track
	err   error
}

// loadingView runs the Loading phase: a loading.Task paces the progress
// bar and tip carousel while the track is generated. It moves on to the
// Track screen once both are done.
type loadingView struct {
	state *SharedState
	goal  domain.Goal

	ctx    context.Context
	cancel context.CancelFunc

	task     *loading.Task
	tips     []domain.Tip
	track    *domain.Track
	finished bool
	frames   []string
	frame    int
	bar      progress.Model
}

func newLoadingView(state *SharedState) *loadingView {
	goal, _ := state.Flow.Goal()
	ctx, cancel := context.WithCancel(context.Background())
	bar := progress.New(progress.WithSolidFill(string(formatter.ColorPurple)), progress.WithoutPercentage())
	bar.Width = 40
	return &loadingView{
		state:  state,
		goal:   goal,
		ctx:    ctx,
		cancel: cancel,
		frames: spinner.Dot.Frames,
		bar:    bar,
	}
}

func (v *loadingView) ID() ViewID    { return ViewLoading }
func (v *loadingView) Title() string { return "Generating" }

func (v *loadingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Close cancels the task and any generation still in flight.
func (v *loadingView) Close() {
	v.cancel()
	if v.task != nil {
		v.task.Cancel()
	}
}

func (v *loadingView) Init() tea.Cmd {
	ctx, tracks := v.ctx, v.state.App.Tracks
	return func() tea.Msg {
		tips, err := tracks.Tips(ctx)
		return loadingTipsMsg{tips: tips, err: err}
	}
}

func (v *loadingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadingTipsMsg:
		if msg.err != nil {
			return v, v.fail(msg.err)
		}
		v.tips = msg.tips
		opts := v.state.App.Loading
		opts.ContentCount = len(v.tips)
		v.task = loading.Start(v.ctx, opts)
		return v, tea.Batch(v.wait(), v.build())

	case loadingEventMsg:
		if msg.task != v.task {
			return v, nil
		}
		if msg.closed || msg.event.Kind == loading.EventDone {
			v.finished = v.task.Snapshot().State == loading.Completed
			return v, v.advance()
		}
		v.frame++
		return v, v.wait()

	case trackBuiltMsg:
		if msg.err != nil {
			return v, v.fail(msg.err)
		}
		v.track = msg.track
		return v, v.advance()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			v.Close()
			return v, startOver()
		}
	}
	return v, nil
}

// wait blocks for the next task event.
func (v *loadingView) wait() tea.Cmd {
	task := v.task
	return func() tea.Msg {
		ev, ok := <-task.Events()
		if !ok {
			return loadingEventMsg{task: task, closed: true}
		}
		return loadingEventMsg{task: task, event: ev}
	}
}

func (v *loadingView) build() tea.Cmd {
	ctx, tracks, goal := v.ctx, v.state.App.Tracks, v.goal
	return func() tea.Msg {
		track, err := tracks.Build(ctx, goal)
		return trackBuiltMsg{track: track, err: err}
	}
}

// advance moves to the Track screen when both the progress bar and the
// track are done.
func (v *loadingView) advance() tea.Cmd {
	if !v.finished || v.track == nil {
		return nil
	}
	track := v.track
	return func() tea.Msg { return navigateMsg{screen: flow.Track, track: track} }
}

func (v *loadingView) fail(err error) tea.Cmd {
	v.Close()
	return tea.Batch(startOver(), noticeErr(fmt.Errorf("generating track: %w", err)))
}

func (v *loadingView) View() string {
	var snap loading.Snapshot
	if v.task != nil {
		snap = v.task.Snapshot()
	}

	var b strings.Builder
	frame := formatter.StylePurple.Render(v.frames[v.frame%len(v.frames)])
	b.WriteString("\n  " + frame + " " + formatter.StyleHeader.Render("Creating your personalized learning track") + "\n")
	b.WriteString("    " + formatter.Dim(formatter.Truncate(v.goal.Text, 64)) + "\n\n")

	pct := float64(snap.Progress) / loading.Complete
	b.WriteString(fmt.Sprintf("  %s %3d%%\n\n", v.bar.ViewAs(pct), snap.Progress))

	if len(v.tips) > 0 {
		tip := v.tips[snap.ContentIndex%len(v.tips)]
		b.WriteString(indent(strings.TrimRight(formatter.FormatTip(tip), "\n"), "  ") + "\n")
	}
	return b.String()
}
