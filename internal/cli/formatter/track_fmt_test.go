package formatter

import (
	"testing"

	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrack() *domain.Track {
	return domain.NewTrack("track-0001-abcdef", domain.Goal{Text: "Learn React"}, []domain.Project{
		{ID: "p1", Title: "Basic Todo App", Duration: domain.Duration{Value: 1, Unit: domain.UnitWeeks}, Difficulty: domain.LevelBeginner},
		{ID: "p2", Title: "Weather Dashboard", Description: "Fetch and chart forecasts", Duration: domain.Duration{Value: 2, Unit: domain.UnitWeeks}, Difficulty: domain.LevelIntermediate},
	})
}

func TestFormatTrack(t *testing.T) {
	out := stripANSI(FormatTrack(testTrack(), 1))

	assert.Contains(t, out, "Your Learning Track")
	assert.Contains(t, out, "track-00")
	assert.Contains(t, out, "3 weeks")
	assert.Contains(t, out, "across 2 projects")
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "○ 1. Basic Todo App")
	assert.Contains(t, out, "▸ ○ 2. Weather Dashboard")
	assert.Contains(t, out, "Fetch and chart forecasts")
	assert.Contains(t, out, "  0%")
}

func TestFormatTrackProject_Marks(t *testing.T) {
	track := testTrack()
	require.NoError(t, track.Complete("p1"))
	require.NoError(t, track.Start("p2"))

	assert.Contains(t, stripANSI(FormatTrackProject(track, 0, false)), "✔ 1.")
	assert.Contains(t, stripANSI(FormatTrackProject(track, 1, false)), "● 2.")
	assert.Contains(t, stripANSI(FormatTrack(track, -1)), " 50%")
}

func TestFormatTip(t *testing.T) {
	tests := []struct {
		kind  domain.TipKind
		label string
	}{
		{domain.TipKindTip, "TIP"},
		{domain.TipKindFact, "DID YOU KNOW"},
		{domain.TipKindQuote, "QUOTE"},
	}
	for _, tt := range tests {
		out := stripANSI(FormatTip(domain.Tip{Kind: tt.kind, Title: "Practice", Content: "Build every day"}))
		assert.Contains(t, out, tt.label)
		assert.Contains(t, out, "Practice")
		assert.Contains(t, out, "Build every day")
	}
}
