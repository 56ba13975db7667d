package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/domain"
)

// FormatTrack renders a generated track: the goal it serves, overall
// progress and the ordered projects. selected is the index of the
// highlighted project, or -1 for none.
func FormatTrack(t *domain.Track, selected int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBold.Render("Your Learning Track"), TruncID(t.ID)))
	b.WriteString(Dim(Truncate(t.Goal.Text, 72)) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("PROGRESS"), RenderProgress(t.PercentComplete(), 20)))
	b.WriteString(fmt.Sprintf("  %s  %s %s\n\n",
		StyleDim.Render("TOTAL   "),
		t.TotalDuration(),
		Dim(fmt.Sprintf("across %d %s", len(t.Projects), Plural(len(t.Projects), "project")))))

	b.WriteString(Header("Projects") + "\n")
	for i := range t.Projects {
		b.WriteString(FormatTrackProject(t, i, i == selected) + "\n")
	}
	return b.String()
}

// FormatTrackProject renders the i-th project of t with its status mark.
func FormatTrackProject(t *domain.Track, i int, selected bool) string {
	p := t.Projects[i]

	cursor := "  "
	titleStyle := StyleFg
	if selected {
		cursor = StyleGreen.Render("▸ ")
		titleStyle = StyleBold
	}

	mark := StyleDim.Render("○")
	switch {
	case t.Progress.Completed[p.ID]:
		mark = StyleGreen.Render("✔")
		titleStyle = StyleDim
	case t.Progress.Current != nil && *t.Progress.Current == p.ID:
		mark = StyleYellow.Render("●")
	}

	line := fmt.Sprintf("%s%s %d. %s  %s  %s",
		cursor, mark, i+1,
		titleStyle.Render(p.Title),
		Dim(p.Duration.String()),
		LevelBadge(p.Difficulty))
	if p.Description == "" {
		return line
	}
	return line + "\n" + Wrap(Dim(p.Description), 72, "       ")
}

// FormatTip renders one carousel item of the Loading screen.
func FormatTip(tip domain.Tip) string {
	var label string
	switch tip.Kind {
	case domain.TipKindFact:
		label = StyleBlue.Render("DID YOU KNOW")
	case domain.TipKindQuote:
		label = StylePurple.Render("QUOTE")
	default:
		label = StyleGreen.Render("TIP")
	}
	var b strings.Builder
	b.WriteString(label)
	if tip.Title != "" {
		b.WriteString("  " + Bold(tip.Title))
	}
	b.WriteString("\n" + Wrap(tip.Content, 64, "") + "\n")
	return b.String()
}
