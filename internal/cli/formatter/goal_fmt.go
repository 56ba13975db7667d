package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/alexanderramin/goalpath/internal/domain"
)

// FormatGoal renders a goal card: text, timeline, level and clarity.
func FormatGoal(g domain.Goal) string {
	var b strings.Builder
	b.WriteString(Wrap(g.Text, 64, "") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("TIMELINE"), timeline(g.Criteria.Timeline)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("LEVEL   "), LevelBadge(g.Criteria.ExperienceLevel)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("CLARITY "), RenderClarityBar(g.Criteria.Clarity, 10)))
	if g.TemplateDerived() {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("TEMPLATE"), g.TemplateID))
	}
	return RenderBox("Your Goal", b.String())
}

// FormatAdvice renders the low-clarity warning with improvement tips.
// It returns "" when the advice carries no warning.
func FormatAdvice(a clarity.Advice) string {
	if !a.Warn {
		return ""
	}
	var b strings.Builder
	title := "Your goal could be clearer"
	style := StyleYellow
	if a.Blocked {
		title = "Your goal is too vague to continue"
		style = StyleRed
	}
	b.WriteString(style.Render("⚠ "+title) + "\n")
	for _, tip := range a.Tips {
		b.WriteString("  " + Dim("• "+tip) + "\n")
	}
	return b.String()
}

// FormatScoreReport renders the per-factor breakdown of a clarity score
// followed by any advice.
func FormatScoreReport(r clarity.Report) string {
	var b strings.Builder
	b.WriteString(Header("Clarity") + "\n")
	b.WriteString("  " + RenderClarityBar(r.Score, 20) + "\n\n")

	for _, f := range r.Factors {
		mark := StyleDim.Render("○")
		msg := Dim(f.Message)
		if f.Matched {
			mark = StyleGreen.Render("●")
			msg = StyleFg.Render(f.Message)
		}
		b.WriteString(fmt.Sprintf("  %s %-12s %s  %s\n", mark, strings.ToLower(string(f.Code)), Dim(fmt.Sprintf("+%.1f", f.Value)), msg))
	}

	if advice := FormatAdvice(clarity.Advise(r.Score)); advice != "" {
		b.WriteString("\n" + advice)
	}
	return b.String()
}
