package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"codequiz/internal/challenge"
	"codequiz/internal/config"
	"codequiz/internal/ui/history"
)

// runHistoryProgram is a test seam for launching the history view.
var runHistoryProgram = func(model tea.Model, stdout io.Writer) error {
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to .codequiz.yml")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		mode := cfg.UI.Mode
		if *uiMode != "" {
			mode = strings.ToLower(strings.TrimSpace(*uiMode))
		}

		archive, err := openArchive(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open archive: %v\n", err)
			return ExitError
		}
		defer func() { _ = archive.Close() }()

		challenges, err := archive.ListChallenges(context.Background(), cfg.User)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to list challenges: %v\n", err)
			return ExitError
		}
		if len(challenges) == 0 {
			fmt.Fprintln(stdout, "No archived challenges yet. Run \"codequiz generate\" first.")
			return ExitOK
		}

		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		if decision.useLive {
			model := history.NewModel(challenges, history.Options{})
			if err := runHistoryProgram(model, stdout); err != nil {
				fmt.Fprintf(stderr, "UI error: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		printHistory(stdout, challenges)
		return ExitOK
	}
}

// printHistory writes the archive listing as plain text, newest first.
func printHistory(stdout io.Writer, challenges []challenge.Challenge) {
	for _, c := range challenges {
		created := "-"
		if !c.CreatedAt.IsZero() {
			created = c.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(stdout, "%s  %-6s  %s  %s\n", shortID(c.ID), c.Difficulty, created, c.Title)
	}
}

// shortID truncates a uuid for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
