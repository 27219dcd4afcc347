// Package prompt renders validated skills into the <available_skills> XML
// fragment included in an agent system prompt. The format is line-oriented
// so the block stays diffable and easy for a model to scan.
package prompt

import (
	"html"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/jingkaihe/skillref/pkg/skills"
)

// ToPrompt generates the <available_skills> block for the given skill
// directories. Each skill contributes its name, description, and the
// absolute location of its manifest. The first invalid skill fails the
// whole render: a prompt built from a broken skill is worse than no prompt.
func ToPrompt(skillDirs []string) (string, error) {
	if len(skillDirs) == 0 {
		return "<available_skills>\n</available_skills>", nil
	}

	lines := []string{"<available_skills>"}

	for _, dir := range skillDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", errors.Wrapf(err, "failed to resolve %s", dir)
		}

		props, err := skills.ReadProperties(abs)
		if err != nil {
			return "", err
		}

		manifest, _ := skills.FindSkillMD(abs)

		lines = append(lines,
			"<skill>",
			"<name>",
			html.EscapeString(props.Name),
			"</name>",
			"<description>",
			html.EscapeString(props.Description),
			"</description>",
			"<location>",
			manifest,
			"</location>",
			"</skill>",
		)
	}

	lines = append(lines, "</available_skills>")
	return strings.Join(lines, "\n"), nil
}
