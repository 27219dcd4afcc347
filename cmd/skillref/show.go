package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillref/pkg/discovery"
	"github.com/jingkaihe/skillref/pkg/presenter"
)

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show a skill's metadata and instructions",
	Long: `Show a skill's name, description, and manifest body.

This is a best-effort read: the skill is loaded even when it would fail
strict validation, as long as the manifest has a name and description.

Exit codes:
  0: Success
  1: Skill could not be loaded`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		showSkillCmd(args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showSkillCmd(path string) {
	skill, err := discovery.Load(resolveSkillDir(path))
	if err != nil {
		presenter.Error(err, "Failed to load skill")
		os.Exit(1)
	}

	presenter.Section(skill.Name)
	presenter.Info(skill.Description)
	presenter.Separator()
	fmt.Println(skill.Content)
}
