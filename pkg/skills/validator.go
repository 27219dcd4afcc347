package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ValidateMetadata applies the schema rules to already-decoded frontmatter
// and returns every violation in rule order: unexpected fields, then name,
// description, and compatibility. It never stops at the first problem; a
// skill author sees everything wrong in a single run. skillDir is optional
// and enables the directory/name consistency check when non-empty.
func ValidateMetadata(metadata map[string]any, skillDir string) []string {
	errs := []string{}
	errs = append(errs, validateFieldSet(metadata)...)

	if name, ok := metadata["name"]; !ok {
		errs = append(errs, "Missing required field in frontmatter: name")
	} else {
		errs = append(errs, validateName(name, skillDir)...)
	}

	if description, ok := metadata["description"]; !ok {
		errs = append(errs, "Missing required field in frontmatter: description")
	} else {
		errs = append(errs, validateDescription(description)...)
	}

	if compatibility, ok := metadata["compatibility"]; ok {
		errs = append(errs, validateCompatibility(compatibility)...)
	}

	return errs
}

// Validate checks a skill directory end to end. Existence, directory-ness,
// manifest presence, and frontmatter decoding each short-circuit with a
// single message since nothing downstream can run; once decoding succeeds
// all schema rules run to completion. An empty result means the skill is
// valid.
func Validate(skillDir string) []string {
	info, err := os.Stat(skillDir)
	if err != nil {
		return []string{fmt.Sprintf("Path does not exist: %s", skillDir)}
	}
	if !info.IsDir() {
		return []string{fmt.Sprintf("Not a directory: %s", skillDir)}
	}

	path, found := FindSkillMD(skillDir)
	if !found {
		return []string{"Missing required file: SKILL.md"}
	}

	metadata, _, err := readManifest(path)
	if err != nil {
		return []string{err.Error()}
	}

	return ValidateMetadata(metadata, skillDir)
}

func validateFieldSet(metadata map[string]any) []string {
	extra := []string{}
	for key := range metadata {
		if !isAllowedField(key) {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}

	sort.Strings(extra)
	return []string{fmt.Sprintf(
		"Unexpected fields in frontmatter: %s. Only %s are allowed.",
		strings.Join(extra, ", "), strings.Join(allowedFields, ", "))}
}

// validateName checks name format and the optional directory match. Names
// support Unicode letters and digits from any script plus hyphens, must be
// lowercase, and cannot start or end with a hyphen. All checks run on the
// NFKC-normalized value so visually equivalent sequences are treated
// identically.
func validateName(value any, skillDir string) []string {
	name, ok := value.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return []string{"Field 'name' must be a non-empty string"}
	}

	name = norm.NFKC.String(strings.TrimSpace(name))

	errs := []string{}

	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		errs = append(errs, fmt.Sprintf(
			"Skill name '%s' exceeds %d character limit (%d chars). Consider using a shorter, more concise name.",
			name, MaxNameLength, n))
	}

	if lower := strings.ToLower(name); name != lower {
		errs = append(errs, fmt.Sprintf(
			"Skill name '%s' must be lowercase. Suggestion: '%s'", name, lower))
	}

	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		errs = append(errs, fmt.Sprintf(
			"Skill name cannot start or end with a hyphen. Suggestion: '%s'",
			strings.Trim(name, "-")))
	}

	if strings.Contains(name, "--") {
		fixed := name
		for strings.Contains(fixed, "--") {
			fixed = strings.ReplaceAll(fixed, "--", "-")
		}
		errs = append(errs, fmt.Sprintf(
			"Skill name cannot contain consecutive hyphens. Suggestion: '%s'", fixed))
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' {
			errs = append(errs, fmt.Sprintf(
				"Skill name '%s' contains invalid characters. Only letters, digits, and hyphens are allowed.",
				name))
			break
		}
	}

	if skillDir != "" {
		base := filepath.Base(skillDir)
		if norm.NFKC.String(base) != name {
			errs = append(errs, fmt.Sprintf(
				"Directory name '%s' must match skill name '%s'. Rename the directory to '%s' or update the 'name' field in SKILL.md.",
				base, name, name))
		}
	}

	return errs
}

func validateDescription(value any) []string {
	description, ok := value.(string)
	if !ok || strings.TrimSpace(description) == "" {
		return []string{"Field 'description' must be a non-empty string"}
	}

	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return []string{fmt.Sprintf(
			"Description exceeds %d character limit (%d chars)",
			MaxDescriptionLength, n)}
	}
	return nil
}

func validateCompatibility(value any) []string {
	compatibility, ok := value.(string)
	if !ok {
		return []string{"Field 'compatibility' must be a string"}
	}

	if n := utf8.RuneCountInString(compatibility); n > MaxCompatibilityLength {
		return []string{fmt.Sprintf(
			"Compatibility exceeds %d character limit (%d chars)",
			MaxCompatibilityLength, n)}
	}
	return nil
}
