package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillref/pkg/presenter"
	"github.com/jingkaihe/skillref/pkg/prompt"
)

var toPromptCmd = &cobra.Command{
	Use:   "to-prompt <path>...",
	Short: "Generate <available_skills> XML for agent prompts",
	Long: `Generate the <available_skills> XML block for agent system prompts.

Accepts one or more skill directories. Every skill must be valid; the
first invalid one aborts the render.

Exit codes:
  0: Success
  1: Error`,
	Args: cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		toPromptSkillsCmd(args)
	},
}

func init() {
	rootCmd.AddCommand(toPromptCmd)
}

func toPromptSkillsCmd(paths []string) {
	dirs := make([]string, 0, len(paths))
	for _, path := range paths {
		dirs = append(dirs, resolveSkillDir(path))
	}

	output, err := prompt.ToPrompt(dirs)
	if err != nil {
		presenter.Error(err, "Failed to generate prompt")
		os.Exit(1)
	}
	fmt.Println(output)
}
