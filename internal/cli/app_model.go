package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/alexanderramin/goalpath/internal/flow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It owns the flow machine and keeps a view stack that mirrors the path
// taken through it, so the header can show a breadcrumb.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient notice shown above the status bar until the next key.
	notice    string
	noticeErr bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:  app,
		Flow: flow.New(),
	}
	return appModel{
		state:     state,
		viewStack: []View{newSearchView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// closeViews stops the background work of every view from index i up.
func (m *appModel) closeViews(i int) {
	for ; i < len(m.viewStack); i++ {
		if c, ok := m.viewStack[i].(closer); ok {
			c.Close()
		}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		return m.navigate(msg)

	case editGoalMsg:
		if err := m.state.Flow.Edit(); err != nil {
			return m.redirect(err)
		}
		return m.show(m.state.Flow.Screen())

	case noticeMsg:
		m.notice = msg.text
		m.noticeErr = msg.err
		return m, nil

	case quitMsg:
		return m.quit()
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	if v == nil {
		return m, nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	m.notice = ""
	m.noticeErr = false

	// Views with their own text input receive every key, 'q' included.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		return m.forward(msg)
	}

	if msg.String() == "q" {
		return m.quit()
	}
	return m.forward(msg)
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.closeViews(0)
	m.quitting = true
	return m, tea.Quit
}

// navigate records what msg carries and moves the flow machine.
func (m appModel) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	if msg.goal != nil {
		m.state.Flow.SetGoal(*msg.goal)
	}
	if msg.track != nil {
		m.state.Flow.SetTrack(msg.track)
	}
	if msg.advice != nil {
		m.state.Advice = msg.advice
	}
	if err := m.state.Flow.Go(msg.screen); err != nil {
		return m.redirect(err)
	}
	return m.show(m.state.Flow.Screen())
}

// redirect reports a failed transition. An illegal move leaves everything
// in place; a missing goal or track has already sent the machine back to
// Search, so the views follow.
func (m appModel) redirect(err error) (tea.Model, tea.Cmd) {
	m.notice = err.Error()
	m.noticeErr = true

	var te *flow.TransitionError
	if errors.As(err, &te) {
		return m, nil
	}
	mm, cmd := m.show(flow.Search)
	mm.notice = err.Error()
	mm.noticeErr = true
	return mm, cmd
}

// show makes screen the active view. Views for the screen and anything
// after it in the flow are dropped first, as is a finished Loading view.
func (m appModel) show(screen flow.Screen) (appModel, tea.Cmd) {
	if screen == flow.Search {
		m.closeViews(0)
		m.state.ClearGoalContext()
		search := newSearchView(m.state)
		m.viewStack = []View{search}
		return m, search.Init()
	}

	target := viewIDFor(screen)
	for len(m.viewStack) > 1 {
		top := m.activeView()
		if top.ID() < target && top.ID() != ViewLoading {
			break
		}
		m.closeViews(len(m.viewStack) - 1)
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}

	v := viewFor(m.state, screen)
	m.viewStack = append(m.viewStack, v)
	return m, v.Init()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	if m.notice != "" {
		style := formatter.StyleGreen
		if m.noticeErr {
			style = formatter.StyleRed
		}
		sections = append(sections, "  "+style.Render(m.notice))
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Fill the screen so shorter frames overwrite the previous one.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("goalpath")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	if goal, ok := m.state.Flow.Goal(); ok && m.state.Flow.Screen() != flow.Search {
		score := goal.Criteria.Clarity
		label := formatter.ClarityStyle(score).Render(fmt.Sprintf("%d%% clear", clarity.Percent(score)))
		header += "  " + formatter.Dim("[") + label + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	hints = append(hints, formatter.Dim("ctrl+c: quit"))

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
