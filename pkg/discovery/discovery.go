// Package discovery scans filesystem trees for skill directories. It sits
// above the skills core: it yields candidate directories and best-effort
// skill material for listings, leaving strict parsing and validation to
// pkg/skills.
package discovery

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/jingkaihe/skillref/pkg/skills"
)

// Skill is a tolerantly-loaded skill: enough for listings and the show
// command without the strict validation pass.
type Skill struct {
	Name        string
	Description string
	Directory   string
	Content     string
}

// Discover returns the sorted skill directories under root. The flat scan
// inspects immediate subdirectories only; the recursive scan matches a
// manifest at any depth.
func Discover(root string, recursive bool) ([]string, error) {
	if recursive {
		return discoverRecursive(root)
	}
	return discoverFlat(root)
}

// Count reports how many skill directories exist under root.
func Count(root string, recursive bool) (int, error) {
	dirs, err := Discover(root, recursive)
	if err != nil {
		return 0, err
	}
	return len(dirs), nil
}

func discoverFlat(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read directory")
	}

	dirs := []string{}
	for _, entry := range entries {
		entryPath := filepath.Join(root, entry.Name())

		// Stat rather than entry.IsDir so symlinked skill directories count.
		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		if _, found := skills.FindSkillMD(entryPath); found {
			dirs = append(dirs, entryPath)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

func discoverRecursive(root string) ([]string, error) {
	fsys := os.DirFS(root)

	seen := map[string]struct{}{}
	dirs := []string{}

	// SKILL.md first so a lowercase variant in the same directory does not
	// produce a duplicate entry.
	for _, pattern := range []string{"**/SKILL.md", "**/skill.md"} {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, errors.Wrap(err, "failed to glob for manifests")
		}
		for _, match := range matches {
			dir := filepath.Join(root, filepath.Dir(match))
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// Load reads a skill without the strict validation pass: frontmatter through
// the markdown pipeline, body with the delimiters stripped. A best-effort
// read beats a hard failure here; callers wanting errors use pkg/skills.
func Load(dir string) (*Skill, error) {
	path, found := skills.FindSkillMD(dir)
	if !found {
		return nil, errors.Errorf("no %s found in %s", skills.SkillFileName, dir)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)
	if name == "" {
		return nil, errors.New("skill name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("skill description is required in frontmatter")
	}

	_, body, err := skills.ParseFrontmatter(string(content))
	if err != nil {
		body = string(content)
	}

	return &Skill{
		Name:        name,
		Description: description,
		Directory:   dir,
		Content:     body,
	}, nil
}
