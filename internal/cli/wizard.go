package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// goalpathHuhTheme styles huh forms to match the formatter palette. Only
// the focused field is coloured; everything blurred is dimmed.
func goalpathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	f := &t.Focused
	f.Title = fg(formatter.ColorPurple).Bold(true)
	f.Description = fg(formatter.ColorDim)
	f.SelectSelector = fg(formatter.ColorPurple)
	f.SelectedOption = fg(formatter.ColorGreen)
	f.UnselectedOption = fg(formatter.ColorFg)
	f.TextInput.Cursor = fg(formatter.ColorPurple)
	f.TextInput.Prompt = fg(formatter.ColorPurple)
	f.TextInput.Text = fg(formatter.ColorFg)
	f.TextInput.Placeholder = fg(formatter.ColorDim)
	f.ErrorMessage = fg(formatter.ColorRed)
	f.ErrorIndicator = fg(formatter.ColorRed)
	f.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorPurple).Padding(0, 1)
	f.BlurredButton = fg(formatter.ColorDim).Padding(0, 1)

	dim := fg(formatter.ColorDim)
	b := &t.Blurred
	b.Title, b.SelectSelector, b.SelectedOption, b.UnselectedOption = dim, dim, dim, dim
	b.TextInput.Prompt, b.TextInput.Text = dim, dim

	return t
}

// parsePositiveInt reads s as a count above zero, or returns fallback.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validatePositiveInt accepts a positive integer.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateGoalText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("describe what you want to learn")
	}
	return nil
}

func unitOptions() []huh.Option[domain.TimeUnit] {
	return []huh.Option[domain.TimeUnit]{
		huh.NewOption("Days", domain.UnitDays),
		huh.NewOption("Weeks", domain.UnitWeeks),
		huh.NewOption("Months", domain.UnitMonths),
	}
}

func levelOptions() []huh.Option[domain.ExperienceLevel] {
	opts := make([]huh.Option[domain.ExperienceLevel], 0, len(domain.ExperienceLevels))
	for _, lvl := range domain.ExperienceLevels {
		label := strings.ToUpper(string(lvl[:1])) + string(lvl[1:])
		opts = append(opts, huh.NewOption(label, lvl))
	}
	return opts
}
