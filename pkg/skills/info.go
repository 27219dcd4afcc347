package skills

import (
	"strings"

	"github.com/pkg/errors"
)

// Info describes a skill directory: its typed properties when the manifest
// is readable, plus the full validation verdict.
type Info struct {
	Path             string      `json:"path"`
	Valid            bool        `json:"valid"`
	Properties       *Properties `json:"properties"`
	ValidationErrors []string    `json:"validation_errors"`
}

// GetSkillInfo gathers properties and validation status for skillDir. It
// never fails: parse and validation problems surface through
// ValidationErrors instead.
func GetSkillInfo(skillDir string) Info {
	info := Info{Path: skillDir, ValidationErrors: []string{}}

	props, err := ReadProperties(skillDir)
	if err != nil {
		var serr *SkillError
		if errors.As(err, &serr) {
			info.ValidationErrors = serr.Messages()
		} else {
			info.ValidationErrors = []string{err.Error()}
		}
		return info
	}

	info.Properties = props
	info.ValidationErrors = Validate(skillDir)
	info.Valid = len(info.ValidationErrors) == 0
	return info
}

// FormatValidationError renders a validation message as an indented bullet
// for terminal output.
func FormatValidationError(message string) string {
	return "  • " + message
}

// SuggestFix maps a validation message to a short remediation hint. The
// second return is false when no mechanical fix applies.
func SuggestFix(message string) (string, bool) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "lowercase"):
		return "Convert all characters in the name to lowercase", true
	case strings.Contains(message, "start or end with a hyphen"):
		return "Remove leading or trailing hyphens from the name", true
	case strings.Contains(message, "consecutive hyphens"):
		return "Replace consecutive hyphens with a single hyphen", true
	case strings.Contains(lower, "directory name") && strings.Contains(lower, "must match"):
		return "Rename the directory or update the name field in SKILL.md", true
	case strings.Contains(message, "exceeds") && strings.Contains(message, "character limit"):
		return "Shorten the field to meet the character limit", true
	}
	return "", false
}
