package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/clarity"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// bar returns width cells with the first pct of them filled.
func bar(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a progress bar like [████░░░░]  45%.
// Progress toward a track has no "bad" range, so the bar is blue until
// it is full and green after.
func RenderProgress(pct float64, width int) string {
	style := StyleBlue
	if pct >= 1 {
		style = StyleGreen
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(pct, width)), min(max(pct, 0), 1)*100)
}

// RenderClarityBar renders a clarity score like [███████░░░] 70% Clear,
// colored by clarity level.
func RenderClarityBar(score float64, width int) string {
	style := ClarityStyle(score)
	label := fmt.Sprintf("%d%% Clear", clarity.Percent(score))
	return fmt.Sprintf("[%s] %s", style.Render(bar(score, width)), style.Render(label))
}
