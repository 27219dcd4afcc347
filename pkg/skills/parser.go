package skills

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FindSkillMD locates the manifest file within dir. The exact name SKILL.md
// wins; otherwise the first case-insensitive match is accepted. The second
// return is false when no manifest exists, which is not an error: callers
// decide whether that is fatal.
func FindSkillMD(dir string) (string, bool) {
	exact := filepath.Join(dir, SkillFileName)
	if info, err := os.Stat(exact); err == nil && !info.IsDir() {
		return exact, true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(entry.Name(), SkillFileName) {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}

// ParseFrontmatter splits the '---' delimited YAML block from content and
// decodes it into a string-keyed mapping. The rest of the document is
// returned as the body with leading newlines trimmed. Scalar values stay
// strings; nested structures such as metadata or allowed-tools are passed
// through opaquely for the validator to inspect at the top level only.
//
// Leading blank lines before the opening delimiter are tolerated; anything
// else is a ParseError, as is a missing closing delimiter or a block that
// does not decode as a YAML mapping.
func ParseFrontmatter(content string) (map[string]any, string, error) {
	lines := strings.Split(content, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start >= len(lines) || strings.TrimSpace(lines[start]) != "---" {
		return nil, "", &ParseError{Reason: "frontmatter not found: content must start with '---'"}
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, "", &ParseError{Reason: "no closing '---' found"}
	}

	block := strings.Join(lines[start+1:end], "\n")
	metadata := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &metadata); err != nil {
		return nil, "", &ParseError{Reason: errors.Wrap(err, "invalid YAML in frontmatter").Error()}
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	body := strings.TrimLeft(strings.Join(lines[end+1:], "\n"), "\n")
	return metadata, body, nil
}

// readManifest reads and decodes the manifest at path, attaching the path to
// any ParseError so messages identify the offending file.
func readManifest(path string) (map[string]any, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &ParseError{Path: path, Reason: errors.Wrap(err, "failed to read manifest").Error()}
	}

	metadata, body, err := ParseFrontmatter(string(raw))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return nil, "", &ParseError{Path: path, Reason: perr.Reason}
		}
		return nil, "", err
	}
	return metadata, body, nil
}

// readFrontmatter locates and decodes the manifest for a skill directory.
func readFrontmatter(dir string) (map[string]any, string, error) {
	path, found := FindSkillMD(dir)
	if !found {
		return nil, "", &ParseError{Path: dir, Reason: "missing SKILL.md"}
	}
	return readManifest(path)
}

// ReadProperties parses, validates, and projects the manifest in dir. This
// path is strict: a missing or malformed manifest fails with a ParseError,
// and any validation failure aborts with a SkillError carrying every
// message. Use Validate for the entry point that reports instead of failing.
func ReadProperties(dir string) (*Properties, error) {
	metadata, _, err := readFrontmatter(dir)
	if err != nil {
		return nil, err
	}

	if messages := ValidateMetadata(metadata, dir); len(messages) > 0 {
		return nil, NewSkillError(dir, messages)
	}

	var props Properties
	if err := mapstructure.Decode(metadata, &props); err != nil {
		return nil, errors.Wrap(err, "failed to decode skill properties")
	}
	return &props, nil
}
