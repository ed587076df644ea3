package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"codequiz/internal/challenge"
	"codequiz/internal/config"
	"codequiz/internal/ui/quiz"
)

// runQuizProgram is a test seam for launching the interactive view.
var runQuizProgram = func(model tea.Model, stdout io.Writer) error {
	program := tea.NewProgram(
		model,
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := program.Run()
	return err
}

// stdinReader is a test seam for plain-mode answer input.
var stdinReader io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to .codequiz.yml")
		filePath := fs.String("file", "", "Challenge file to play")
		id := fs.String("id", "", "Archived challenge id to play")
		showExplanation := fs.Bool("show-explanation", false, "Show the explanation block by default")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *filePath != "" && *id != "" {
			fmt.Fprintln(stderr, "--file and --id are mutually exclusive")
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
		show := cfg.UI.ShowExplanation || *showExplanation

		c, err := resolveChallenge(cfg, *filePath, *id)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load challenge: %v\n", err)
			return ExitError
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
			model := quiz.NewModel(c, quiz.Options{ShowExplanation: show})
			if err := runQuizProgram(model, stdout); err != nil {
				fmt.Fprintf(stderr, "UI error: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		return playPlain(c, show, stdout, stderr)
	}
}

// resolveChallenge picks the challenge source: a file, an archived id, or
// the newest archive entry.
func resolveChallenge(cfg config.Config, filePath, id string) (challenge.Challenge, error) {
	if filePath != "" {
		return challenge.Load(filePath)
	}
	archive, err := openArchive(cfg)
	if err != nil {
		return challenge.Challenge{}, err
	}
	defer func() { _ = archive.Close() }()
	ctx := context.Background()
	if id != "" {
		return archive.GetChallenge(ctx, id)
	}
	return archive.LatestChallenge(ctx, cfg.User)
}

// playPlain renders the challenge once, reads a single answer, and renders
// the classified result.
func playPlain(c challenge.Challenge, showExplanation bool, stdout, stderr io.Writer) int {
	state := quiz.NewState(c, showExplanation)
	fmt.Fprintln(stdout, quiz.Render(state, true))
	fmt.Fprintf(stdout, "\nAnswer [1-%d]: ", len(c.Options))

	scanner := bufio.NewScanner(stdinReader)
	if !scanner.Scan() {
		fmt.Fprintln(stderr, "No answer given")
		return ExitError
	}
	input := strings.TrimSpace(scanner.Text())
	index, err := strconv.Atoi(input)
	if err != nil || index < 1 || index > len(c.Options) {
		fmt.Fprintf(stderr, "Invalid answer %q (expected 1-%d)\n", input, len(c.Options))
		return ExitError
	}

	state = quiz.Select(state, index-1)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, quiz.Render(state, true))
	return ExitOK
}
