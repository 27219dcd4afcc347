// Package skills implements parsing and validation of Agent Skill packages.
// A skill is a directory containing a SKILL.md manifest whose YAML
// frontmatter declares the skill's name, description, and optional fields.
// The parser extracts the frontmatter block; the validator applies the
// schema rules and reports every violation in one pass so authors can fix
// a manifest in a single round trip.
package skills

import "slices"

// SkillFileName is the canonical manifest filename. Lookup falls back to a
// case-insensitive match when the exact name is absent.
const SkillFileName = "SKILL.md"

const (
	// MaxNameLength is the inclusive limit on skill names in Unicode code
	// points, counted after NFKC normalization.
	MaxNameLength = 64
	// MaxDescriptionLength is the inclusive limit on descriptions.
	MaxDescriptionLength = 1024
	// MaxCompatibilityLength is the inclusive limit on the optional
	// compatibility field.
	MaxCompatibilityLength = 500
)

// allowedFields is the closed set of top-level frontmatter keys, sorted for
// deterministic error messages. The metadata key is allowed one level deep
// only; its internal structure is never validated.
var allowedFields = []string{
	"allowed-tools",
	"compatibility",
	"description",
	"license",
	"metadata",
	"name",
}

func isAllowedField(key string) bool {
	return slices.Contains(allowedFields, key)
}

// Properties is the validated, typed projection of SKILL.md frontmatter.
// It is constructed by ReadProperties only after validation succeeds and is
// immutable from the caller's point of view. AllowedTools and Metadata may
// be nested structures and are carried through unchanged.
type Properties struct {
	Name          string `json:"name" mapstructure:"name"`
	Description   string `json:"description" mapstructure:"description"`
	License       string `json:"license,omitempty" mapstructure:"license"`
	AllowedTools  any    `json:"allowed-tools,omitempty" mapstructure:"allowed-tools"`
	Metadata      any    `json:"metadata,omitempty" mapstructure:"metadata"`
	Compatibility string `json:"compatibility,omitempty" mapstructure:"compatibility"`
}
