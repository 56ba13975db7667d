package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/goalpath/internal/domain"
)

// FormatTemplateList renders the catalog as a table inside a bordered box.
func FormatTemplateList(templates []domain.TemplateSummary) string {
	if len(templates) == 0 {
		return Dim("No templates found.") + "\n"
	}

	headers := []string{"#", "ID", "TITLE", "KIND", "TIMELINE", "LEVEL"}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			Dim(strconv.Itoa(t.Position)),
			StyleGreen.Render(t.ID),
			Bold(iconTitle(t.Icon, t.Title)),
			KindBadge(t.Kind),
			timeline(t.Timeline),
			LevelBadge(t.ExperienceLevel),
		})
	}
	return RenderBox("Templates", RenderTable(headers, rows))
}

// FormatTemplateShow renders one catalog entry with its goal text.
func FormatTemplateShow(t *domain.Template) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", StyleBold.Render(iconTitle(t.Icon, t.Title)), KindBadge(t.Kind)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("ID      "), t.ID))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("TIMELINE"), timeline(t.Timeline)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("LEVEL   "), LevelBadge(t.ExperienceLevel)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("CLARITY "), RenderClarityBar(t.Clarity, 10)))

	if t.Description != "" {
		b.WriteString("\n" + Wrap(t.Description, 64, "  ") + "\n")
	}
	if t.Text != "" {
		b.WriteString("\n" + Header("Goal") + "\n")
		b.WriteString(Wrap(t.Text, 64, "  ") + "\n")
	}
	if line := metadataLine(t.Metadata); line != "" {
		b.WriteString("\n  " + line + "\n")
	}

	return RenderBox("", b.String())
}

// FormatSearchResults renders templates matching query, one entry per line.
func FormatSearchResults(query string, results []domain.TemplateSummary) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Results for %q", query)) + "\n")
	if len(results) == 0 {
		b.WriteString("  " + Dim("No matches. Start from scratch with: goalpath track --goal \"...\"") + "\n")
		return b.String()
	}
	for _, r := range results {
		b.WriteString(FormatTemplateSummary(r, false) + "\n")
	}
	b.WriteString(Dim(fmt.Sprintf("%d %s", len(results), Plural(len(results), "result"))) + "\n")
	return b.String()
}

// FormatTemplateSummary renders one search result. The selected entry is
// marked with a cursor, as in the interactive list.
func FormatTemplateSummary(t domain.TemplateSummary, selected bool) string {
	cursor := "  "
	titleStyle := StyleFg
	if selected {
		cursor = StyleGreen.Render("▸ ")
		titleStyle = StyleBold
	}
	line := fmt.Sprintf("%s%s  %s", cursor, titleStyle.Render(iconTitle(t.Icon, t.Title)), KindBadge(t.Kind))
	detail := Dim(Truncate(t.Description, 72))
	if meta := metadataLine(t.Metadata); meta != "" {
		detail += "\n    " + meta
	}
	return line + "\n    " + detail
}

func iconTitle(icon, title string) string {
	if icon == "" {
		return title
	}
	return icon + " " + title
}

func timeline(d domain.Duration) string {
	if d.Value == 0 {
		return Dim("--")
	}
	return d.String()
}

func metadataLine(m *domain.TemplateMetadata) string {
	if m == nil {
		return ""
	}
	var parts []string
	if m.Platform != "" {
		parts = append(parts, m.Platform)
	}
	if m.Type != "" {
		parts = append(parts, m.Type)
	}
	if m.CompletionCount > 0 {
		parts = append(parts, fmt.Sprintf("%s completions", compactCount(m.CompletionCount)))
	}
	if m.IsPro {
		parts = append(parts, StyleYellow.Render("PRO"))
	}
	return strings.Join(parts, Dim(" · "))
}

// compactCount renders large counts as 1.2k / 3.4M.
func compactCount(n float64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(n/1_000, 'f', 1, 64) + "k"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}
