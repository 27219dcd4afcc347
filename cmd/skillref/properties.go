package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillref/pkg/presenter"
	"github.com/jingkaihe/skillref/pkg/skills"
)

var readPropertiesCmd = &cobra.Command{
	Use:   "read-properties <path>",
	Short: "Read and print skill properties as JSON",
	Long: `Read and print skill properties as JSON.

Parses the YAML frontmatter from SKILL.md, validates it, and outputs the
typed properties as JSON. Any parse or validation failure aborts with
every problem listed.

Exit codes:
  0: Success
  1: Parse or validation error`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		readPropertiesSkillCmd(args[0])
	},
}

func init() {
	rootCmd.AddCommand(readPropertiesCmd)
}

func readPropertiesSkillCmd(path string) {
	dir := resolveSkillDir(path)

	props, err := skills.ReadProperties(dir)
	if err != nil {
		presenter.Error(err, "Failed to read skill properties")
		os.Exit(1)
	}

	output, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		presenter.Error(err, "Failed to encode properties")
		os.Exit(1)
	}
	fmt.Println(string(output))
}
