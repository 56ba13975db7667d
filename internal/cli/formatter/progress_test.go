package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		filled int
		label  string
	}{
		{"empty", 0, 0, "  0%"},
		{"half", 0.5, 5, " 50%"},
		{"full", 1, 10, "100%"},
		{"over clamps", 1.5, 10, "100%"},
		{"negative clamps", -0.5, 0, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := stripANSI(RenderProgress(tt.pct, 10))
			assert.Equal(t, tt.filled, strings.Count(out, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(out, emptyBlock))
			assert.True(t, strings.HasSuffix(out, tt.label), out)
		})
	}
}

func TestRenderProgress_TinyWidthClamps(t *testing.T) {
	out := stripANSI(RenderProgress(0.5, 1))
	assert.Equal(t, 2, strings.Count(out, filledBlock)+strings.Count(out, emptyBlock))
}

func TestRenderClarityBar(t *testing.T) {
	assert.Equal(t, "[█████████░] 90% Clear", stripANSI(RenderClarityBar(0.9, 10)))
	assert.Equal(t, "[████░░░░░░] 40% Clear", stripANSI(RenderClarityBar(0.4, 10)))
	assert.Equal(t, "[██████████] 100% Clear", stripANSI(RenderClarityBar(1.0, 10)))
}

func TestSpinner_RenderAdvancesFrames(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf)

	s.Render(2, "Generating")
	s.Render(4, "Generating")

	out := stripANSI(buf.String())
	assert.Contains(t, out, spinnerFrames[0]+"   2% Generating")
	assert.Contains(t, out, spinnerFrames[1]+"   4% Generating")
}

func TestSpinner_ClearOnlyAfterRender(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf)

	s.Clear()
	assert.Empty(t, buf.String())

	s.Render(10, "x")
	buf.Reset()
	s.Clear()
	assert.Equal(t, "\r\033[K", buf.String())
}
