// Package review runs automated quality checks over a skill repository:
// linting, formatting, and tests, each delegated to an external command.
// The commands are configurable so the suite adapts to whatever toolchain
// the repository under review actually uses.
package review

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillref/pkg/logger"
)

// CheckStatus is the verdict for a single check or the whole run.
type CheckStatus string

const (
	StatusUnknown CheckStatus = "unknown"
	StatusPassed  CheckStatus = "passed"
	StatusFailed  CheckStatus = "failed"
)

// CheckResult holds the outcome of one check.
type CheckResult struct {
	Status CheckStatus `json:"status"`
	Issues []string    `json:"issues,omitempty"`
	Output string      `json:"output,omitempty"`
	Fixed  bool        `json:"fixed,omitempty"`
}

// Results aggregates the outcome of a review run.
type Results struct {
	Linting    CheckResult `json:"linting"`
	Formatting CheckResult `json:"formatting"`
	Tests      CheckResult `json:"tests"`
	Overall    CheckStatus `json:"overall"`
}

// Passed reports whether every check succeeded.
func (r *Results) Passed() bool {
	return r.Overall == StatusPassed
}

// Config holds the commands run for each check. Fix commands are optional;
// a check without one is reported but never auto-fixed.
type Config struct {
	LintCommand      []string
	LintFixCommand   []string
	FormatCommand    []string
	FormatFixCommand []string
	TestCommand      []string
}

// DefaultConfig mirrors the reference toolchain for skill repositories.
func DefaultConfig() Config {
	return Config{
		LintCommand:      []string{"ruff", "check", "."},
		LintFixCommand:   []string{"ruff", "check", "--fix", "."},
		FormatCommand:    []string{"ruff", "format", "--check", "."},
		FormatFixCommand: []string{"ruff", "format", "."},
		TestCommand:      []string{"pytest", "-v", "--tb=short"},
	}
}

// ConfigFromViper reads review.* command overrides, falling back to the
// defaults for any command left unset.
func ConfigFromViper() Config {
	config := DefaultConfig()
	if cmd := viper.GetStringSlice("review.lint_command"); len(cmd) > 0 {
		config.LintCommand = cmd
	}
	if cmd := viper.GetStringSlice("review.lint_fix_command"); len(cmd) > 0 {
		config.LintFixCommand = cmd
	}
	if cmd := viper.GetStringSlice("review.format_command"); len(cmd) > 0 {
		config.FormatCommand = cmd
	}
	if cmd := viper.GetStringSlice("review.format_fix_command"); len(cmd) > 0 {
		config.FormatFixCommand = cmd
	}
	if cmd := viper.GetStringSlice("review.test_command"); len(cmd) > 0 {
		config.TestCommand = cmd
	}
	return config
}

// Runner executes the review suite in a target directory.
type Runner struct {
	config Config
	dir    string
	fix    bool
}

// NewRunner creates a Runner for dir. With fix enabled, failed lint and
// format checks re-run their fix commands after reporting.
func NewRunner(dir string, config Config, fix bool) *Runner {
	return &Runner{config: config, dir: dir, fix: fix}
}

// Run executes lint, format, and test checks in order. A tool that cannot
// be started at all fails the run; a tool that runs and reports problems is
// a failed check, not an error.
func (r *Runner) Run(ctx context.Context) (*Results, error) {
	results := &Results{
		Linting:    CheckResult{Status: StatusUnknown},
		Formatting: CheckResult{Status: StatusUnknown},
		Tests:      CheckResult{Status: StatusUnknown},
		Overall:    StatusUnknown,
	}

	output, ok, err := r.runCommand(ctx, r.config.LintCommand)
	if err != nil {
		return nil, err
	}
	if ok {
		results.Linting.Status = StatusPassed
	} else {
		results.Linting.Status = StatusFailed
		results.Linting.Issues = nonEmptyLines(output)
		if r.fix && len(r.config.LintFixCommand) > 0 {
			if _, _, err := r.runCommand(ctx, r.config.LintFixCommand); err != nil {
				return nil, err
			}
			results.Linting.Fixed = true
		}
	}

	_, ok, err = r.runCommand(ctx, r.config.FormatCommand)
	if err != nil {
		return nil, err
	}
	if ok {
		results.Formatting.Status = StatusPassed
	} else {
		results.Formatting.Status = StatusFailed
		if r.fix && len(r.config.FormatFixCommand) > 0 {
			if _, _, err := r.runCommand(ctx, r.config.FormatFixCommand); err != nil {
				return nil, err
			}
			results.Formatting.Fixed = true
		}
	}

	output, ok, err = r.runCommand(ctx, r.config.TestCommand)
	if err != nil {
		return nil, err
	}
	if ok {
		results.Tests.Status = StatusPassed
	} else {
		results.Tests.Status = StatusFailed
		results.Tests.Output = output
	}

	if results.Linting.Status == StatusPassed &&
		results.Formatting.Status == StatusPassed &&
		results.Tests.Status == StatusPassed {
		results.Overall = StatusPassed
	} else {
		results.Overall = StatusFailed
	}

	return results, nil
}

// runCommand runs argv in the target directory. The bool reports whether
// the command exited zero; a command that could not start at all is an
// error.
func (r *Runner) runCommand(ctx context.Context, argv []string) (string, bool, error) {
	if len(argv) == 0 {
		return "", false, errors.New("empty review command")
	}

	logger.G(ctx).WithField("command", strings.Join(argv, " ")).Debug("Running review check")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(output), false, nil
		}
		return "", false, errors.Wrapf(err, "required tool not found: %s", argv[0])
	}
	return string(output), true, nil
}

func nonEmptyLines(output string) []string {
	lines := []string{}
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
