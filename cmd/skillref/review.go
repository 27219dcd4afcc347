package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillref/pkg/presenter"
	"github.com/jingkaihe/skillref/pkg/review"
)

type AutoReviewConfig struct {
	JSONOutput bool
	Fix        bool
}

func NewAutoReviewConfig() *AutoReviewConfig {
	return &AutoReviewConfig{
		JSONOutput: false,
		Fix:        false,
	}
}

var autoReviewCmd = &cobra.Command{
	Use:   "auto-review [path]",
	Short: "Perform automated code review and quality checks",
	Long: `Perform automated code review and quality checks.

Runs the configured lint, format, and test commands in the target
directory and aggregates their results. Commands default to the reference
toolchain and can be overridden via review.* configuration keys.

Exit codes:
  0: All checks passed
  1: Issues found`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getAutoReviewConfigFromFlags(cmd)
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		autoReviewSkillsCmd(cmd, path, config)
	},
}

func init() {
	defaults := NewAutoReviewConfig()
	autoReviewCmd.Flags().Bool("json", defaults.JSONOutput, "Output results as JSON")
	autoReviewCmd.Flags().Bool("fix", defaults.Fix, "Automatically fix issues where possible")
	rootCmd.AddCommand(autoReviewCmd)
}

func getAutoReviewConfigFromFlags(cmd *cobra.Command) *AutoReviewConfig {
	config := NewAutoReviewConfig()
	if jsonOutput, err := cmd.Flags().GetBool("json"); err == nil {
		config.JSONOutput = jsonOutput
	}
	if fix, err := cmd.Flags().GetBool("fix"); err == nil {
		config.Fix = fix
	}
	return config
}

func autoReviewSkillsCmd(cmd *cobra.Command, path string, config *AutoReviewConfig) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		presenter.Error(errors.Errorf("path must be a directory: %s", path), "Invalid path")
		os.Exit(1)
	}

	runner := review.NewRunner(path, review.ConfigFromViper(), config.Fix)
	results, err := runner.Run(cmd.Context())
	if err != nil {
		presenter.Error(err, "Review failed")
		os.Exit(1)
	}

	if config.JSONOutput {
		output, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			presenter.Error(err, "Failed to encode results")
			os.Exit(1)
		}
		fmt.Println(string(output))
	} else {
		presenter.Section("Automated Review Results")

		presenter.Info(fmt.Sprintf("Linting: %s", strings.ToUpper(string(results.Linting.Status))))
		issues := results.Linting.Issues
		if len(issues) > 10 {
			issues = issues[:10]
		}
		for _, issue := range issues {
			presenter.Info(fmt.Sprintf("  - %s", issue))
		}

		presenter.Info(fmt.Sprintf("Formatting: %s", strings.ToUpper(string(results.Formatting.Status))))
		presenter.Info(fmt.Sprintf("Tests: %s", strings.ToUpper(string(results.Tests.Status))))

		if config.Fix {
			presenter.Success("Auto-fix applied where possible")
		}

		presenter.Separator()
		presenter.Info(fmt.Sprintf("Overall: %s", strings.ToUpper(string(results.Overall))))
	}

	if !results.Passed() {
		os.Exit(1)
	}
}
