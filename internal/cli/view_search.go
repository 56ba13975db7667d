package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/flow"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const searchPlaceholder = "What would you like to learn..."

// searchResultsMsg carries the catalog entries matching query.
type searchResultsMsg struct {
	query   string
	results []domain.TemplateSummary
	err     error
}

// searchView is the entry screen: a query box over the catalog, with
// "Start from Scratch" always offered as the last choice.
type searchView struct {
	state   *SharedState
	input   textinput.Model
	query   string
	results []domain.TemplateSummary
	cursor  int
	err     error
}

func newSearchView(state *SharedState) *searchView {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "🔍 "
	ti.PromptStyle = formatter.StylePurple
	ti.CharLimit = 120
	ti.Focus()
	return &searchView{state: state, input: ti}
}

func (v *searchView) ID() ViewID    { return ViewSearch }
func (v *searchView) Title() string { return "Search" }

func (v *searchView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	}
}

func (v *searchView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *searchView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		// Results for an older query are stale.
		if msg.query != v.query {
			return v, nil
		}
		v.err = msg.err
		v.results = msg.results
		v.cursor = min(v.cursor, len(v.results))
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil
		case tea.KeyDown:
			if v.cursor < len(v.results) {
				v.cursor++
			}
			return v, nil
		case tea.KeyEnter:
			return v, v.choose()
		case tea.KeyEsc:
			v.input.Reset()
			v.query = ""
			v.results = nil
			v.cursor = 0
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if q := v.input.Value(); q != v.query {
		v.query = q
		v.cursor = 0
		return v, tea.Batch(cmd, v.search(q))
	}
	return v, cmd
}

func (v *searchView) search(query string) tea.Cmd {
	templates := v.state.App.Templates
	return func() tea.Msg {
		results, err := templates.Search(context.Background(), query)
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

// choose starts a goal from the highlighted entry, or a blank goal when
// "Start from Scratch" is highlighted.
func (v *searchView) choose() tea.Cmd {
	app := v.state.App
	if v.cursor >= len(v.results) {
		return func() tea.Msg {
			goal := app.Goals.CreateBlank(context.Background())
			return navigateMsg{screen: flow.Create, goal: &goal}
		}
	}
	id := v.results[v.cursor].ID
	return func() tea.Msg {
		ctx := context.Background()
		tmpl, err := app.Templates.Lookup(ctx, id)
		if err != nil {
			return noticeMsg{text: err.Error(), err: true}
		}
		goal := app.Goals.CreateFromTemplate(ctx, tmpl)
		return navigateMsg{screen: flow.Template, goal: &goal}
	}
}

func (v *searchView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("What do you want to learn?") + "\n")
	b.WriteString("  " + formatter.Dim("Search goal templates and projects, or start from scratch.") + "\n\n")
	b.WriteString("  " + v.input.View() + "\n\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n\n")
	}

	if strings.TrimSpace(v.query) != "" {
		if len(v.results) == 0 {
			b.WriteString("  " + formatter.Dim("No templates match. Write your own goal instead.") + "\n\n")
		}
		for i, r := range v.results {
			b.WriteString(indent(formatter.FormatTemplateSummary(r, i == v.cursor), "  ") + "\n")
		}
	}

	scratch := formatter.StyleFg.Render("✏️  Start from Scratch")
	cursor := "  "
	if v.cursor == len(v.results) {
		scratch = formatter.StyleBold.Render("✏️  Start from Scratch")
		cursor = formatter.StyleGreen.Render("▸ ")
	}
	b.WriteString("  " + cursor + scratch + "\n")
	b.WriteString("      " + formatter.Dim("Describe your own goal and we'll score how clear it is") + "\n")
	return b.String()
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
