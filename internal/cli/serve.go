package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"codequiz/internal/archiveserver"
	"codequiz/internal/config"
)

// serveArchive is a test seam for running the archive server.
var serveArchive = archiveserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to .codequiz.yml")
		addr := fs.String("addr", "127.0.0.1:5000", "Address to listen on")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
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

		fmt.Fprintf(stdout, "Serving challenge archive at http://%s\n", *addr)
		if err := serveArchive(context.Background(), archiveserver.Config{
			Addr:  *addr,
			Store: archive,
			User:  cfg.User,
		}); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
