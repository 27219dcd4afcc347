package review

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubConfig() Config {
	return Config{
		LintCommand:      []string{"true"},
		LintFixCommand:   []string{"true"},
		FormatCommand:    []string{"true"},
		FormatFixCommand: []string{"true"},
		TestCommand:      []string{"true"},
	}
}

func TestRunAllPassing(t *testing.T) {
	runner := NewRunner(t.TempDir(), stubConfig(), false)

	results, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusPassed, results.Linting.Status)
	assert.Equal(t, StatusPassed, results.Formatting.Status)
	assert.Equal(t, StatusPassed, results.Tests.Status)
	assert.Equal(t, StatusPassed, results.Overall)
	assert.True(t, results.Passed())
}

func TestRunLintFailureCapturesIssues(t *testing.T) {
	config := stubConfig()
	config.LintCommand = []string{"sh", "-c", "echo issue-one; echo issue-two; exit 1"}

	runner := NewRunner(t.TempDir(), config, false)
	results, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, results.Linting.Status)
	assert.Equal(t, []string{"issue-one", "issue-two"}, results.Linting.Issues)
	assert.False(t, results.Linting.Fixed)
	assert.Equal(t, StatusFailed, results.Overall)
	assert.False(t, results.Passed())
}

func TestRunFixReRunsFixCommands(t *testing.T) {
	config := stubConfig()
	config.LintCommand = []string{"false"}
	config.FormatCommand = []string{"false"}

	runner := NewRunner(t.TempDir(), config, true)
	results, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, results.Linting.Fixed)
	assert.True(t, results.Formatting.Fixed)
}

func TestRunTestFailureCapturesOutput(t *testing.T) {
	config := stubConfig()
	config.TestCommand = []string{"sh", "-c", "echo FAILED test_something; exit 1"}

	runner := NewRunner(t.TempDir(), config, false)
	results, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, results.Tests.Status)
	assert.Contains(t, results.Tests.Output, "FAILED test_something")
}

func TestRunMissingTool(t *testing.T) {
	config := stubConfig()
	config.LintCommand = []string{"definitely-not-an-installed-tool"}

	runner := NewRunner(t.TempDir(), config, false)
	_, err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required tool not found")
}

func TestConfigFromViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	config := ConfigFromViper()
	assert.Equal(t, DefaultConfig(), config)

	viper.Set("review.lint_command", []string{"golangci-lint", "run"})
	config = ConfigFromViper()
	assert.Equal(t, []string{"golangci-lint", "run"}, config.LintCommand)
	assert.Equal(t, DefaultConfig().TestCommand, config.TestCommand)
}
