package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/goalpath/internal/catalog"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/loading"
	"github.com/alexanderramin/goalpath/internal/repository"
	"github.com/alexanderramin/goalpath/internal/service"
	"github.com/alexanderramin/goalpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastLoading finishes the Loading phase in a couple of ticks. The
// carousel never rotates within a test.
var fastLoading = loading.Options{
	ProgressInterval: time.Millisecond,
	ProgressStep:     50,
	ContentInterval:  time.Hour,
}

// testApp wires a full App over an in-memory catalog seeded with the
// embedded defaults.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	c, err := catalog.Load(catalog.Defaults())
	require.NoError(t, err)
	require.NoError(t, service.SeedCatalog(context.Background(), testutil.NewTestUoW(database), c))

	ids := testutil.NewSequenceIDs("id")
	goals := service.NewGoalService(ids)
	return &App{
		Goals:     goals,
		Templates: service.NewTemplateService(repository.NewSQLiteTemplateRepo(database)),
		Tracks: service.NewTrackService(goals,
			service.NewStaticTrackGenerator(repository.NewSQLiteProjectRepo(database)),
			repository.NewSQLiteTipRepo(database),
			ids),
		Loading: fastLoading,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root ---

func TestRootCmd_NotInteractivePrintsHelp(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "goalpath")
	assert.Contains(t, out, "track")
	assert.Contains(t, out, "score")
}

// --- score ---

func TestScoreCmd_ClearGoal(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "score", "Learn React by building web applications with modern tools")
	require.NoError(t, err)
	assert.Contains(t, out, "100% Clear")
	assert.NotContains(t, out, "could be clearer")
}

func TestScoreCmd_VagueGoalWarns(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "score", "cooking")
	require.NoError(t, err)
	assert.Contains(t, out, "40% Clear")
	assert.Contains(t, out, "could be clearer")
}

func TestScoreCmd_RequiresText(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "score")
	require.Error(t, err)
}

// --- template ---

func TestTemplateListCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Learn React Development")
	assert.Contains(t, out, "Full Stack Development")
	assert.Contains(t, out, "watson-assistant")
	assert.Contains(t, out, "PROJECT")
}

func TestTemplateShowCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "templates", "show", "watson-assistant")
	require.NoError(t, err)
	assert.Contains(t, out, "Develop a virtual assistant with Watson Assistant")
	assert.Contains(t, out, "AWS")
	assert.Contains(t, out, "PRO")
}

func TestTemplateShowCmd_Unknown(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "template", "show", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateSearchCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "template", "search", "react")
	require.NoError(t, err)
	assert.Contains(t, out, `RESULTS FOR "REACT"`, "search header is upper-cased")
	assert.Contains(t, out, "Learn React Development")
	assert.Contains(t, out, "Full Stack Development")
	assert.Contains(t, out, "2 results")
}

func TestTemplateSearchCmd_NoMatch(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "template", "search", "knitting")
	require.NoError(t, err)
	assert.Contains(t, out, "No matches")
	assert.Contains(t, out, "--goal")
}

// --- track ---

func TestTrackCmd_FromTemplate(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "track", "--template", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "YOUR GOAL")
	assert.Contains(t, out, "Your Learning Track")
	assert.Contains(t, out, "Basic Todo App")
	assert.Contains(t, out, "Weather Dashboard")
	assert.Contains(t, out, "E-commerce Platform")
	assert.Contains(t, out, "90% Clear")
}

func TestTrackCmd_TemplateWithOverrides(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "track", "--template", "2", "--unit", "months", "--no-wait")
	require.NoError(t, err)
	assert.Contains(t, out, "24 months")
}

func TestTrackCmd_FromGoalText(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "track",
		"--goal", "Learn React by building web applications with modern tools",
		"--timeline", "6", "--unit", "weeks", "--level", "advanced", "--no-wait")
	require.NoError(t, err)
	assert.Contains(t, out, "6 weeks")
	assert.Contains(t, out, "Advanced")
	assert.Contains(t, out, "Basic Todo App")
}

// The scorer never goes below the block threshold, so a vague goal
// still gets a track, with the warning printed alongside.
func TestTrackCmd_VagueGoalWarns(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "track", "--goal", "x", "--no-wait")
	require.NoError(t, err)
	assert.Contains(t, out, "40% Clear")
	assert.Contains(t, out, "could be clearer")
	assert.Contains(t, out, "Your Learning Track")
}

func TestTrackCmd_BlankGoal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "track", "--goal", "   ")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))
}

func TestTrackCmd_InvalidUnit(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "track", "--template", "1", "--unit", "years")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "timeline.unit")
}

func TestTrackCmd_InvalidLevel(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "track", "--template", "1", "--level", "guru")
	require.Error(t, err)
}

func TestTrackCmd_InvalidTimeline(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "track", "--template", "1", "--timeline", "0")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))
}

func TestTrackCmd_RequiresTemplateOrGoal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "track")
	require.Error(t, err)
}

func TestTrackCmd_TemplateAndGoalExclusive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "track", "--template", "1", "--goal", "Learn Go")
	require.Error(t, err)
}

func TestTrackCmd_UnknownTemplate(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "track", "--template", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCriteriaFlags_UnsetFlagsLeaveGoalAlone(t *testing.T) {
	f := newCriteriaFlags()
	require.NoError(t, f.fs.Parse(nil))
	p, err := f.patch()
	require.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestCriteriaFlags_MergeTimeline(t *testing.T) {
	f := newCriteriaFlags()
	require.NoError(t, f.fs.Parse([]string{"--unit", "months"}))
	p, err := f.patch()
	require.NoError(t, err)

	goal := testutil.NewTestGoal("Learn Go", testutil.WithTimeline(8, domain.UnitWeeks))
	f.mergeTimeline(&p, goal)
	require.NotNil(t, p.Timeline)
	assert.Equal(t, domain.Duration{Value: 8, Unit: domain.UnitMonths}, *p.Timeline)
}
