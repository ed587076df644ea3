package history

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"codequiz/internal/challenge"
)

// defaultColumns returns the table layout before any resize arrives.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Difficulty", Width: 10},
		{Title: "Title", Width: 48},
		{Title: "Created", Width: 16},
	}
}

// columnsForWidth stretches the title column into the available width.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	fixed := 0
	for _, column := range columns {
		if column.Title != "Title" {
			fixed += column.Width
		}
	}
	titleWidth := width - fixed - 8
	if titleWidth < 16 {
		titleWidth = 16
	}
	for i := range columns {
		if columns[i].Title == "Title" {
			columns[i].Width = titleWidth
		}
	}
	return columns
}

// tableStyles returns table styles for the history view.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForChallenges converts challenges into table rows.
func rowsForChallenges(challenges []challenge.Challenge) []table.Row {
	rows := make([]table.Row, 0, len(challenges))
	for _, c := range challenges {
		rows = append(rows, table.Row{
			shortID(c.ID),
			c.Difficulty,
			c.Title,
			formatCreated(c.CreatedAt),
		})
	}
	return rows
}

// shortID truncates a uuid for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// formatCreated renders the creation timestamp, or a dash when unset.
func formatCreated(created time.Time) string {
	if created.IsZero() {
		return "-"
	}
	return created.Format("2006-01-02 15:04")
}
