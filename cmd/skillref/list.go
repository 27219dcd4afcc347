package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillref/pkg/discovery"
	"github.com/jingkaihe/skillref/pkg/logger"
	"github.com/jingkaihe/skillref/pkg/presenter"
	"github.com/jingkaihe/skillref/pkg/skills"
)

type ListConfig struct {
	JSONOutput bool
	Recursive  bool
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		JSONOutput: false,
		Recursive:  false,
	}
}

var listCmd = &cobra.Command{
	Use:   "list [directory]",
	Short: "List all skills found in a directory",
	Long: `List all skills found in a directory.

Scans the given directory (and subdirectories with --recursive) for skill
directories containing SKILL.md files, and prints each skill's name, path,
and description. Skills whose manifests cannot be read are reported inline.

Exit codes:
  0: Success
  1: Error`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getListConfigFromFlags(cmd)
		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		listSkillsCmd(cmd, root, config)
	},
}

func init() {
	defaults := NewListConfig()
	listCmd.Flags().Bool("json", defaults.JSONOutput, "Output results as JSON")
	listCmd.Flags().BoolP("recursive", "r", defaults.Recursive, "Search recursively for skills")
	rootCmd.AddCommand(listCmd)
}

func getListConfigFromFlags(cmd *cobra.Command) *ListConfig {
	config := NewListConfig()
	if jsonOutput, err := cmd.Flags().GetBool("json"); err == nil {
		config.JSONOutput = jsonOutput
	}
	if recursive, err := cmd.Flags().GetBool("recursive"); err == nil {
		config.Recursive = recursive
	}
	return config
}

type skillListing struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func listSkillsCmd(cmd *cobra.Command, root string, config *ListConfig) {
	ctx := cmd.Context()
	logger.G(ctx).WithField("root", root).Debug("Discovering skills")

	dirs, err := discovery.Discover(root, config.Recursive)
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if config.JSONOutput {
		listings := []skillListing{}
		for _, dir := range dirs {
			props, err := skills.ReadProperties(dir)
			if err != nil {
				// Unreadable skills are skipped in JSON output
				logger.G(ctx).WithError(err).WithField("dir", dir).Debug("Skipping unreadable skill")
				continue
			}
			listings = append(listings, skillListing{
				Path:        dir,
				Name:        props.Name,
				Description: props.Description,
			})
		}

		output, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			presenter.Error(err, "Failed to encode skills")
			os.Exit(1)
		}
		fmt.Println(string(output))
		return
	}

	if len(dirs) == 0 {
		presenter.Info(fmt.Sprintf("No skills found in %s", root))
		return
	}

	presenter.Info(fmt.Sprintf("Found %d skill(s) in %s:\n", len(dirs), root))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	broken := []string{}
	for _, dir := range dirs {
		props, err := skills.ReadProperties(dir)
		if err != nil {
			broken = append(broken, dir)
			continue
		}

		description := props.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", props.Name, dir, description)
	}
	tw.Flush()

	for _, dir := range broken {
		presenter.Warning(fmt.Sprintf("Skipped invalid skill: %s (run 'skillref validate %s' for details)", dir, dir))
	}
}
