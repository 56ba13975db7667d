package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ClarityStyle colors a clarity score: red when it blocks submission,
// yellow while fair, green once good.
func ClarityStyle(score float64) lipgloss.Style {
	switch clarity.LevelOf(score) {
	case clarity.LevelLow:
		return StyleRed
	case clarity.LevelFair:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// LevelBadge renders an experience level such as "● Beginner".
func LevelBadge(level domain.ExperienceLevel) string {
	var style lipgloss.Style
	switch level {
	case domain.LevelBeginner:
		style = StyleGreen
	case domain.LevelIntermediate:
		style = StyleYellow
	case domain.LevelAdvanced:
		style = StyleRed
	default:
		return StyleDim.Render("● " + string(level))
	}
	return style.Render("● " + capitalize(string(level)))
}

// KindBadge marks catalog entries as goal templates or project listings.
func KindBadge(kind domain.TemplateKind) string {
	if kind == domain.KindProject {
		return StyleBlue.Render("PROJECT")
	}
	return StylePurple.Render("TEMPLATE")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
