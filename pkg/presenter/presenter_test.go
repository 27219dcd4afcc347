package presenter

import (
	"bytes"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var output, errorOutput bytes.Buffer
	return NewWithOptions(&output, &errorOutput, ColorNever), &output, &errorOutput
}

func TestNew(t *testing.T) {
	presenter := New()
	require.NotNil(t, presenter)
	assert.Equal(t, os.Stdout, presenter.output)
	assert.Equal(t, os.Stderr, presenter.errorOutput)
	assert.False(t, presenter.quiet)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name          string
		noColor       string
		skillrefColor string
		expected      ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLREF_COLOR always", "", "always", ColorAlways},
		{"SKILLREF_COLOR force", "", "force", ColorAlways},
		{"SKILLREF_COLOR never", "", "never", ColorNever},
		{"SKILLREF_COLOR off", "", "off", ColorNever},
		{"SKILLREF_COLOR auto", "", "auto", ColorAuto},
		{"default", "", "", ColorAuto},
		{"invalid value", "", "invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("SKILLREF_COLOR", tt.skillrefColor)
			if tt.noColor == "" {
				os.Unsetenv("NO_COLOR")
			}
			if tt.skillrefColor == "" {
				os.Unsetenv("SKILLREF_COLOR")
			}

			assert.Equal(t, tt.expected, detectColorMode())
		})
	}
}

func TestError(t *testing.T) {
	presenter, output, errorOutput := newTestPresenter()

	presenter.Error(errors.New("boom"), "Validation failed")
	assert.Empty(t, output.String())
	assert.Contains(t, errorOutput.String(), "[ERROR] Validation failed: boom")

	errorOutput.Reset()
	presenter.Error(errors.New("boom"), "")
	assert.Contains(t, errorOutput.String(), "[ERROR] boom")

	errorOutput.Reset()
	presenter.Error(nil, "ignored")
	assert.Empty(t, errorOutput.String())
}

func TestSuccessWarningInfo(t *testing.T) {
	presenter, output, _ := newTestPresenter()

	presenter.Success("all skills valid")
	assert.Contains(t, output.String(), "✓ all skills valid")

	output.Reset()
	presenter.Warning("no skills found")
	assert.Contains(t, output.String(), "⚠ no skills found")

	output.Reset()
	presenter.Info("3 skills discovered")
	assert.Equal(t, "3 skills discovered\n", output.String())
}

func TestSection(t *testing.T) {
	presenter, output, _ := newTestPresenter()

	presenter.Section("Results")
	assert.Contains(t, output.String(), "Results\n-------\n")
}

func TestQuietMode(t *testing.T) {
	presenter, output, errorOutput := newTestPresenter()
	presenter.SetQuiet(true)
	assert.True(t, presenter.IsQuiet())

	presenter.Success("hidden")
	presenter.Warning("hidden")
	presenter.Info("hidden")
	presenter.Section("hidden")
	presenter.Separator()
	assert.Empty(t, output.String())

	// Errors are never suppressed.
	presenter.Error(errors.New("still shown"), "")
	assert.Contains(t, errorOutput.String(), "still shown")
}
