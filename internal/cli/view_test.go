package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/flow"
	"github.com/alexanderramin/goalpath/internal/loading"
	"github.com/alexanderramin/goalpath/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stuckLoading never advances on its own within a test.
var stuckLoading = loading.Options{
	ProgressInterval: time.Hour,
	ContentInterval:  time.Hour,
}

// failingTracks builds nothing.
type failingTracks struct {
	service.TrackService
	err error
}

func (f failingTracks) Build(context.Context, domain.Goal) (*domain.Track, error) {
	return nil, f.err
}

func (f failingTracks) Tips(context.Context) ([]domain.Tip, error) {
	return nil, nil
}

func templateGoal(t *testing.T, app *App) domain.Goal {
	t.Helper()
	ctx := context.Background()
	tmpl, err := app.Templates.Lookup(ctx, "1")
	require.NoError(t, err)
	return app.Goals.CreateFromTemplate(ctx, tmpl)
}

// loadingState is shared state parked on the Loading screen.
func loadingState(t *testing.T, app *App) *SharedState {
	t.Helper()
	m := flow.New()
	m.SetGoal(templateGoal(t, app))
	require.NoError(t, m.Go(flow.Template))
	require.NoError(t, m.Go(flow.Confirm))
	require.NoError(t, m.Go(flow.Loading))
	return &SharedState{App: app, Flow: m}
}

// startLoading runs Init and feeds its tips into the view.
func startLoading(t *testing.T, v *loadingView) tea.Cmd {
	t.Helper()
	msg := v.Init()()
	tips, ok := msg.(loadingTipsMsg)
	require.True(t, ok)
	require.NoError(t, tips.err)
	_, cmd := v.Update(tips)
	require.NotNil(t, v.task)
	return cmd
}

// collapseSpace joins s on single spaces so wrapped text compares equal.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// batchMsgs runs every Cmd of a batch and collects their messages.
func batchMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var msgs []tea.Msg
	for _, c := range batch {
		if c != nil {
			msgs = append(msgs, c())
		}
	}
	return msgs
}

func TestLoadingView_EscCancelsTask(t *testing.T) {
	app := testApp(t)
	app.Loading = stuckLoading
	v := newLoadingView(loadingState(t, app))
	startLoading(t, v)

	assert.Contains(t, v.View(), "0%")
	assert.Equal(t, loading.Running, v.task.Snapshot().State)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	nav, ok := cmd().(navigateMsg)
	require.True(t, ok)
	assert.Equal(t, flow.Search, nav.screen)

	assert.ErrorIs(t, v.task.Wait(), context.Canceled)
	assert.Equal(t, loading.Cancelled, v.task.Snapshot().State)
}

func TestLoadingView_ShowsTips(t *testing.T) {
	app := testApp(t)
	app.Loading = stuckLoading
	v := newLoadingView(loadingState(t, app))
	startLoading(t, v)
	defer v.Close()

	require.NotEmpty(t, v.tips)
	view := v.View()
	assert.Contains(t, collapseSpace(view), collapseSpace(v.tips[0].Content), "tip content is wrapped, not cut")
	assert.Contains(t, view, "Creating your personalized learning track")
}

func TestLoadingView_WaitsForTrackAndProgress(t *testing.T) {
	app := testApp(t)
	app.Loading = stuckLoading
	v := newLoadingView(loadingState(t, app))
	startLoading(t, v)
	defer v.Close()

	track := domain.NewTrack("t1", v.goal, nil)
	_, cmd := v.Update(trackBuiltMsg{track: track})
	assert.Nil(t, cmd, "progress has not finished")

	v.finished = true
	cmd = v.advance()
	require.NotNil(t, cmd)
	nav, ok := cmd().(navigateMsg)
	require.True(t, ok)
	assert.Equal(t, flow.Track, nav.screen)
	assert.Same(t, track, nav.track)
}

func TestLoadingView_IgnoresStaleTask(t *testing.T) {
	app := testApp(t)
	app.Loading = stuckLoading
	v := newLoadingView(loadingState(t, app))
	startLoading(t, v)
	defer v.Close()

	stale := loading.Start(context.Background(), stuckLoading)
	stale.Cancel()

	_, cmd := v.Update(loadingEventMsg{task: stale, closed: true})
	assert.Nil(t, cmd)
	assert.False(t, v.finished)
}

func TestLoadingView_BuildFailureStartsOver(t *testing.T) {
	app := testApp(t)
	app.Loading = stuckLoading
	app.Tracks = failingTracks{err: errors.New("generator offline")}
	v := newLoadingView(loadingState(t, app))
	startLoading(t, v)

	_, cmd := v.Update(trackBuiltMsg{err: errors.New("generator offline")})
	msgs := batchMsgs(t, cmd)

	require.Len(t, msgs, 2)
	nav, ok := msgs[0].(navigateMsg)
	require.True(t, ok)
	assert.Equal(t, flow.Search, nav.screen)
	n, ok := msgs[1].(noticeMsg)
	require.True(t, ok)
	assert.True(t, n.err)
	assert.Contains(t, n.text, "generator offline")

	assert.Equal(t, loading.Cancelled, v.task.Snapshot().State)
}

func TestLoadingView_RunsToCompletion(t *testing.T) {
	app := testApp(t)
	v := newLoadingView(loadingState(t, app))
	cmd := startLoading(t, v)
	defer v.Close()

	for _, msg := range batchMsgs(t, cmd) {
		for msg != nil {
			var next tea.Cmd
			_, next = v.Update(msg)
			if next == nil {
				break
			}
			msg = next()
			if nav, ok := msg.(navigateMsg); ok {
				assert.Equal(t, flow.Track, nav.screen)
				require.NotNil(t, nav.track)
				assert.Len(t, nav.track.Projects, 3)
				msg = nil
			}
		}
	}

	assert.True(t, v.finished)
	require.NotNil(t, v.track)
	assert.NoError(t, v.task.Wait())
}

func TestApplyGoalForm_TemplateUnchanged(t *testing.T) {
	app := testApp(t)
	goal := templateGoal(t, app)

	msg := applyGoalForm(app, goal, fieldsFromGoal(goal))

	nav, ok := msg.(navigateMsg)
	require.True(t, ok)
	assert.Equal(t, flow.Confirm, nav.screen)
	require.NotNil(t, nav.goal)
	assert.Equal(t, 0.9, nav.goal.Criteria.Clarity)
	require.NotNil(t, nav.advice)
	assert.False(t, nav.advice.Warn)
}

func TestApplyGoalForm_RewordedTemplateIsRescored(t *testing.T) {
	app := testApp(t)
	goal := templateGoal(t, app)
	fields := fieldsFromGoal(goal)
	fields.text = "cooking"
	fields.level = domain.LevelAdvanced

	msg := applyGoalForm(app, goal, fields)

	nav, ok := msg.(navigateMsg)
	require.True(t, ok)
	assert.Equal(t, 0.4, nav.goal.Criteria.Clarity)
	assert.Equal(t, domain.LevelAdvanced, nav.goal.Criteria.ExperienceLevel)
	assert.True(t, nav.advice.Warn)
}

func TestApplyGoalForm_InvalidTimeline(t *testing.T) {
	app := testApp(t)
	goal := templateGoal(t, app)
	fields := fieldsFromGoal(goal)
	fields.timeline = "soon"

	msg := applyGoalForm(app, goal, fields)

	rejected, ok := msg.(goalFormRejectedMsg)
	require.True(t, ok)
	assert.True(t, domain.IsInvalidInput(rejected.err))
}

func TestGoalFormView_PreviewClarity(t *testing.T) {
	app := testApp(t)
	state := loadingState(t, app)
	v := newGoalFormView(state, true)

	assert.Equal(t, 0.9, v.previewClarity())

	v.fields.text = "cooking"
	assert.Equal(t, 0.4, v.previewClarity())
	assert.Contains(t, v.View(), "40% Clear")
}

func TestGoalFormView_RejectionKeepsValues(t *testing.T) {
	app := testApp(t)
	v := newGoalFormView(loadingState(t, app), false)
	v.fields.text = "something"
	v.applying = true

	v.Update(goalFormRejectedMsg{err: errors.New("nope")})

	assert.False(t, v.applying)
	assert.Equal(t, "something", v.fields.text)
	assert.Contains(t, v.View(), "nope")
}

func TestParsePositiveInt(t *testing.T) {
	assert.Equal(t, 6, parsePositiveInt(" 6 ", 1))
	assert.Equal(t, 1, parsePositiveInt("0", 1))
	assert.Equal(t, 1, parsePositiveInt("x", 1))
	assert.NoError(t, validatePositiveInt("3"))
	assert.Error(t, validatePositiveInt("-3"))
	assert.Error(t, validateGoalText("  "))
}
