package quiz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// optionRowOffset is the screen line of the first option: difficulty line,
// title line, then one blank line. Mouse hit testing relies on this layout.
const optionRowOffset = 3

// optionIndexForLine maps a screen line onto an option index.
func optionIndexForLine(line, count int) (int, bool) {
	index := line - optionRowOffset
	if index < 0 || index >= count {
		return 0, false
	}
	return index, true
}

// Render draws a challenge without cursor or key help, for plain output.
func Render(state State, noColor bool) string {
	return render(state, noSelection, noColor)
}

// render draws the full challenge view.
func render(state State, cursor int, noColor bool) string {
	sections := []string{
		renderDifficulty(state.Challenge.Difficulty, noColor),
		renderTitle(state.Challenge.Title, noColor),
		"",
	}
	for i := range state.Challenge.Options {
		sections = append(sections, renderOption(state, i, cursor, noColor))
	}
	if state.ExplanationVisible() {
		sections = append(sections, "", renderExplanation(state.Challenge.Explanation, noColor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDifficulty renders the difficulty label line.
func renderDifficulty(difficulty string, noColor bool) string {
	return stylize(strings.ToUpper(difficulty), noColor, difficultyColor(difficulty))
}

// renderTitle renders the question prompt line.
func renderTitle(title string, noColor bool) string {
	if noColor {
		return title
	}
	return lipgloss.NewStyle().Bold(true).Render(title)
}

// renderOption renders one option row with its classification marker.
func renderOption(state State, index, cursor int, noColor bool) string {
	pointer := "  "
	if index == cursor && !state.Answered() {
		pointer = "> "
	}
	line := fmt.Sprintf("%s%d. %s", pointer, index+1, state.Challenge.Options[index])
	switch Classify(state, index) {
	case ClassCorrect:
		return stylize(line+"  [correct]", noColor, lipgloss.Color("42"))
	case ClassIncorrect:
		return stylize(line+"  [your answer]", noColor, lipgloss.Color("196"))
	default:
		return line
	}
}

// renderExplanation renders the explanation block.
func renderExplanation(explanation string, noColor bool) string {
	return stylize("Explanation: "+explanation, noColor, lipgloss.Color("244"))
}

// difficultyColor picks a label color per difficulty level.
func difficultyColor(difficulty string) lipgloss.Color {
	switch difficulty {
	case "easy":
		return lipgloss.Color("42")
	case "medium":
		return lipgloss.Color("214")
	case "hard":
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("252")
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
