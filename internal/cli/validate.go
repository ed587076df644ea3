package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"codequiz/internal/challenge"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		path := fs.Arg(0)
		if path == "" {
			fmt.Fprintln(stderr, "Missing <challenge file>")
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		loaded, err := challenge.Load(path)
		if err != nil {
			var validationErr *challenge.ValidationError
			if errors.As(err, &validationErr) {
				fmt.Fprintf(stderr, "%s is invalid:\n", path)
				for _, issue := range validationErr.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
				}
				return ExitError
			}
			fmt.Fprintf(stderr, "Failed to load %s: %v\n", path, err)
			return ExitError
		}

		fmt.Fprintf(stdout, "%s is valid: [%s] %s (%d options)\n", path, loaded.Difficulty, loaded.Title, len(loaded.Options))
		return ExitOK
	}
}
