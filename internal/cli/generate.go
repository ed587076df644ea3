package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"codequiz/internal/challenge"
	"codequiz/internal/config"
	"codequiz/internal/generator"
	"codequiz/internal/store"
)

// newProvider is a test seam for constructing the completion provider.
var newProvider = func(cfg config.Config) (generator.Provider, error) {
	if cfg.Provider.Model == "" {
		return nil, fmt.Errorf("provider.model is required for generation")
	}
	return generator.ProviderFromEnv(cfg.Provider.Model, cfg.Provider.BaseURL, nil)
}

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to .codequiz.yml")
		difficulty := fs.String("difficulty", "", "Challenge difficulty: easy|medium|hard")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		level := cfg.Generation.Difficulty
		if *difficulty != "" {
			level = *difficulty
		}
		if !challenge.KnownDifficulty(level) {
			fmt.Fprintf(stderr, "Unknown difficulty %q (expected easy|medium|hard)\n", level)
			return ExitUsage
		}

		provider, err := newProvider(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Provider unavailable: %v\n", err)
			return ExitError
		}

		archive, err := openArchive(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open archive: %v\n", err)
			return ExitError
		}
		defer func() { _ = archive.Close() }()

		ctx := context.Background()
		quota, err := archive.ConsumeQuota(ctx, cfg.User)
		if errors.Is(err, store.ErrQuotaExhausted) {
			fmt.Fprintf(stderr, "Quota exhausted; next reset at %s\n", archive.NextReset(quota).Format("2006-01-02 15:04 MST"))
			return ExitError
		}
		if err != nil {
			fmt.Fprintf(stderr, "Quota check failed: %v\n", err)
			return ExitError
		}

		generated, genErr := generator.New(provider).GenerateOrFallback(ctx, level)
		if genErr != nil {
			fmt.Fprintf(stderr, "Generation failed (%v); archiving the fallback challenge\n", genErr)
		}
		generated.CreatedBy = cfg.User

		inserted, err := archive.InsertChallenge(ctx, generated)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to archive challenge: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Challenge %s archived\n", inserted.ID)
		fmt.Fprintf(stdout, "  [%s] %s\n", inserted.Difficulty, inserted.Title)
		fmt.Fprintf(stdout, "Quota remaining: %d\n", quota.Remaining)
		return ExitOK
	}
}
