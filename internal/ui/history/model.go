package history

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codequiz/internal/challenge"
)

// Model renders the challenge archive as a scrollable table.
type Model struct {
	table   table.Model
	count   int
	noColor bool
}

// Options configures the history view.
type Options struct {
	NoColor bool
}

// NewModel constructs a history view over archived challenges, newest first.
func NewModel(challenges []challenge.Challenge, opts Options) Model {
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rowsForChallenges(challenges)),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		table:   t,
		count:   len(challenges),
		noColor: opts.NoColor,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and quitting.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-3, 1))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the archive table with a header line.
func (m Model) View() string {
	header := renderHeader(m.count, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View())
}

// renderHeader renders the archive summary line.
func renderHeader(count int, noColor bool) string {
	line := "Challenge archive"
	if count == 1 {
		line += " | 1 challenge"
	} else {
		line += " | " + strconv.Itoa(count) + " challenges"
	}
	if noColor {
		return line
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render(line)
}
