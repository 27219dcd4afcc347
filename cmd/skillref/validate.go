package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillref/pkg/presenter"
	"github.com/jingkaihe/skillref/pkg/skills"
)

type ValidateConfig struct {
	JSONOutput bool
	Quiet      bool
	Hints      bool
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		JSONOutput: false,
		Quiet:      false,
		Hints:      false,
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Validate one or more skill directories",
	Long: `Validate one or more skill directories.

Checks that each skill has a valid SKILL.md with proper frontmatter,
correct naming conventions, and required fields. All problems for a
skill are reported in one run. Paths pointing at a SKILL.md file are
resolved to their containing directory.

Exit codes:
  0: All skills valid
  1: One or more validation errors found`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getValidateConfigFromFlags(cmd)
		validateSkillsCmd(args, config)
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().Bool("json", defaults.JSONOutput, "Output results as JSON")
	validateCmd.Flags().BoolP("quiet", "q", defaults.Quiet, "Only output errors (no success messages)")
	validateCmd.Flags().Bool("hints", defaults.Hints, "Print a remediation hint after each error where one exists")
	rootCmd.AddCommand(validateCmd)
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if jsonOutput, err := cmd.Flags().GetBool("json"); err == nil {
		config.JSONOutput = jsonOutput
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
		config.Quiet = quiet
	}
	if hints, err := cmd.Flags().GetBool("hints"); err == nil {
		config.Hints = hints
	}
	return config
}

type validationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func validateSkillsCmd(paths []string, config *ValidateConfig) {
	results := make(map[string]validationResult, len(paths))
	order := make([]string, 0, len(paths))
	hasErrors := false

	for _, path := range paths {
		dir := resolveSkillDir(path)
		errs := skills.Validate(dir)

		if _, seen := results[dir]; !seen {
			order = append(order, dir)
		}
		results[dir] = validationResult{Valid: len(errs) == 0, Errors: errs}

		if len(errs) > 0 {
			hasErrors = true
		}
	}

	if config.JSONOutput {
		output, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			presenter.Error(err, "Failed to encode results")
			os.Exit(1)
		}
		fmt.Println(string(output))
	} else {
		for _, dir := range order {
			result := results[dir]
			if result.Valid {
				if !config.Quiet {
					presenter.Success(fmt.Sprintf("Valid skill: %s", dir))
				}
				continue
			}

			presenter.Error(errors.Errorf("validation failed for %s", dir), "")
			for _, msg := range result.Errors {
				fmt.Fprintln(os.Stderr, skills.FormatValidationError(msg))
				if config.Hints {
					if hint, ok := skills.SuggestFix(msg); ok {
						fmt.Fprintln(os.Stderr, "    hint: "+hint)
					}
				}
			}
		}
	}

	if hasErrors {
		os.Exit(1)
	}
}
