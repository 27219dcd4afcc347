package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillref/pkg/logger"
	"github.com/jingkaihe/skillref/pkg/skills"
)

var rootCmd = &cobra.Command{
	Use:   "skillref",
	Short: "Reference tool for Agent Skill packages",
	Long: `skillref inspects directories that package Agent Skills: it parses the
YAML frontmatter of each SKILL.md manifest, validates it against the skill
schema with actionable error messages, and renders validated skills into
the <available_skills> block for agent system prompts.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			logger.L.WithError(err).Warn("Invalid log level, using default")
		}
		logger.SetLogFormat(viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLREF")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillref")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "fmt")

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// resolveSkillDir maps a path pointing directly at a SKILL.md file (any
// casing) to its containing directory; everything else passes through
// unchanged.
func resolveSkillDir(path string) string {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() && strings.EqualFold(filepath.Base(path), skills.SkillFileName) {
		return filepath.Dir(path)
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
