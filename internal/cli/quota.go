package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"codequiz/internal/config"
)

// runQuota builds the handler for the quota command.
func runQuota(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to .codequiz.yml")
		reset := fs.Bool("reset", false, "Force an immediate quota reset")
		if err := fs.Parse(args); err != nil {
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

		ctx := context.Background()
		if *reset {
			quota, err := archive.ForceResetQuota(ctx, cfg.User)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to reset quota: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Quota reset: %d generations available\n", quota.Remaining)
			return ExitOK
		}

		quota, err := archive.GetOrCreateQuota(ctx, cfg.User)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read quota: %v\n", err)
			return ExitError
		}
		quota, err = archive.ResetQuotaIfNeeded(ctx, quota)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to refresh quota: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "User: %s\n", quota.UserID)
		fmt.Fprintf(stdout, "Quota remaining: %d\n", quota.Remaining)
		fmt.Fprintf(stdout, "Next reset: %s\n", archive.NextReset(quota).Format("2006-01-02 15:04 MST"))
		return ExitOK
	}
}
