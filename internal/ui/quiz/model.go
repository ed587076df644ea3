package quiz

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"codequiz/internal/challenge"
)

// Model renders a single challenge using Bubble Tea.
type Model struct {
	state   State
	cursor  int
	width   int
	noColor bool
	keys    keyMap
	help    help.Model
}

// Options configures the challenge view.
type Options struct {
	// ShowExplanation is the initial explanation visibility before any
	// answer is given.
	ShowExplanation bool
	NoColor         bool
}

// NewModel constructs a challenge view model.
func NewModel(c challenge.Challenge, opts Options) Model {
	return Model{
		state:   NewState(c, opts.ShowExplanation),
		noColor: opts.NoColor,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// State exposes the current view state.
func (m Model) State() State {
	return m.state
}

// ChallengeMsg swaps the rendered challenge for a new one.
type ChallengeMsg struct {
	Challenge challenge.Challenge
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key, mouse, resize, and challenge-change messages. All
// state transitions run sequentially on the Bubble Tea loop, so a challenge
// change is always observed before any later selection.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case ChallengeMsg:
		m.state = SetChallenge(m.state, typed.Challenge)
		m.cursor = 0
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(typed)
	case tea.MouseMsg:
		return m.updateMouse(typed)
	}
	return m, nil
}

// updateKey handles cursor movement, selection, and quitting.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Challenge.Options)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.state = Select(m.state, m.cursor)
		return m, nil
	}
	if index, ok := digitIndex(msg.String()); ok && index < len(m.state.Challenge.Options) {
		m.state = Select(m.state, index)
		m.cursor = index
	}
	return m, nil
}

// updateMouse maps a left click on an option row to a selection.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	index, ok := optionIndexForLine(msg.Y, len(m.state.Challenge.Options))
	if !ok {
		return m, nil
	}
	m.cursor = index
	m.state = Select(m.state, index)
	return m, nil
}

// View renders the challenge.
func (m Model) View() string {
	return render(m.state, m.cursor, m.noColor) + "\n" + m.help.View(m.keys)
}

// digitIndex maps keys 1..9 onto option indices 0..8.
func digitIndex(value string) (int, bool) {
	if len(value) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
