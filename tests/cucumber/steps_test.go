//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"codequiz/internal/cli"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a working directory with a default configuration$`, state.aWorkingDirectoryWithDefaultConfig)
	ctx.Step(`^a valid challenge file "([^"]+)"$`, state.aValidChallengeFile)
	ctx.Step(`^an invalid challenge file "([^"]+)"$`, state.anInvalidChallengeFile)
	ctx.Step(`^a challenge file "([^"]+)" with malformed options$`, state.aChallengeFileWithMalformedOptions)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
}

// reset clears buffers before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workDir = ""
	s.previousWD = ""
}

// cleanup restores the working directory and removes scenario files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

// ensureWorkDir switches into a throwaway directory for the scenario.
func (s *featureState) ensureWorkDir() error {
	if s.workDir != "" {
		return nil
	}
	dir, err := os.MkdirTemp("", "codequiz-cucumber-*")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("read working dir: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter work dir: %w", err)
	}
	s.workDir = dir
	s.previousWD = wd
	return nil
}

// aWorkingDirectoryWithDefaultConfig writes a config pointing the archive at
// the scenario directory.
func (s *featureState) aWorkingDirectoryWithDefaultConfig() error {
	if err := s.ensureWorkDir(); err != nil {
		return err
	}
	body := fmt.Sprintf(`version: 1
user: local
store:
  path: %q
`, filepath.Join(s.workDir, "archive.duckdb"))
	if err := os.WriteFile(filepath.Join(s.workDir, ".codequiz.yml"), []byte(body), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// aValidChallengeFile writes a well-formed challenge YAML file.
func (s *featureState) aValidChallengeFile(name string) error {
	if err := s.ensureWorkDir(); err != nil {
		return err
	}
	body := `title: "What does append return?"
difficulty: easy
options:
  - "A new slice header"
  - "Always the same slice"
  - "An error"
  - "Nothing"
correct_answer_id: 0
explanation: "append may reallocate, so the returned header must be kept."
`
	return s.writeFile(name, body)
}

// anInvalidChallengeFile writes a challenge with an unknown difficulty.
func (s *featureState) anInvalidChallengeFile(name string) error {
	if err := s.ensureWorkDir(); err != nil {
		return err
	}
	body := `title: "Broken"
difficulty: brutal
options:
  - "yes"
  - "no"
correct_answer_id: 0
explanation: "n/a"
`
	return s.writeFile(name, body)
}

// aChallengeFileWithMalformedOptions writes options as an unparseable
// encoded string.
func (s *featureState) aChallengeFileWithMalformedOptions(name string) error {
	if err := s.ensureWorkDir(); err != nil {
		return err
	}
	body := `title: "Broken"
difficulty: easy
options: '["unterminated'
correct_answer_id: 0
explanation: "n/a"
`
	return s.writeFile(name, body)
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "codequiz" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

// theExitCodeIsZero asserts the CLI succeeded.
func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputContains asserts stdout includes the given snippet.
func (s *featureState) theOutputContains(snippet string) error {
	if !strings.Contains(s.stdout.String(), snippet) {
		return fmt.Errorf("expected output to contain %q, got %q", snippet, s.stdout.String())
	}
	return nil
}

// theErrorOutputContains asserts stderr includes the given snippet.
func (s *featureState) theErrorOutputContains(snippet string) error {
	if !strings.Contains(s.stderr.String(), snippet) {
		return fmt.Errorf("expected error output to contain %q, got %q", snippet, s.stderr.String())
	}
	return nil
}

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) writeFile(name, body string) error {
	if err := os.WriteFile(filepath.Join(s.workDir, name), []byte(body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
