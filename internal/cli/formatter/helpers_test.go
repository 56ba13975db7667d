package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"héllo wörld", 4, "hél…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "%q/%d", tt.in, tt.width)
	}
}

func TestWrap_IndentsEveryLine(t *testing.T) {
	out := Wrap("one two three four five six seven eight", 14, "  ")
	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "  "), "line %q", l)
		assert.LessOrEqual(t, len(l), 14)
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "project", Plural(1, "project"))
	assert.Equal(t, "projects", Plural(0, "project"))
	assert.Equal(t, "projects", Plural(3, "project"))
}

func TestRenderBox_Title(t *testing.T) {
	out := stripANSI(RenderBox("Templates", "body"))
	assert.Contains(t, out, "TEMPLATES")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abcdef12", stripANSI(TruncID("abcdef1234567890")))
	assert.Equal(t, "1", stripANSI(TruncID("1")))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{StyleGreen.Render("1"), "React"},
			{"long-id", Bold("Full Stack")},
		},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "ID       TITLE", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "1        React", lines[2])
	assert.Equal(t, "long-id  Full Stack", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
