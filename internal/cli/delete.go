package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"codequiz/internal/config"
	"codequiz/internal/store"
)

// runDelete builds the handler for the delete command.
func runDelete(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to .codequiz.yml")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		id := fs.Arg(0)
		if id == "" {
			fmt.Fprintln(stderr, "Missing <challenge-id>")
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		cfg, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		archive, err := openArchive(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open archive: %v\n", err)
			return ExitError
		}
		defer func() { _ = archive.Close() }()

		err = archive.DeleteChallenge(context.Background(), id, cfg.User)
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(stderr, "Challenge %s not found (or created by someone else)\n", id)
			return ExitError
		}
		if err != nil {
			fmt.Fprintf(stderr, "Failed to delete challenge: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Challenge %s deleted\n", id)
		return ExitOK
	}
}
