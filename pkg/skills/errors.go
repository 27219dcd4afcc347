package skills

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ParseError reports a manifest that is missing, unreadable, or structurally
// malformed. It is always fatal to the call that produced it; schema
// violations for a file that does not parse are never worth listing.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// SkillError aggregates every validation failure found in a skill directory.
// It is raised only by the strict ReadProperties path; Validate and
// ValidateMetadata return message lists instead of failing.
type SkillError struct {
	Dir string
	err *multierror.Error
}

// NewSkillError builds a SkillError from validation messages, preserving
// their order.
func NewSkillError(dir string, messages []string) *SkillError {
	merr := &multierror.Error{ErrorFormat: listFormatFunc}
	for _, msg := range messages {
		merr = multierror.Append(merr, errors.New(msg))
	}
	return &SkillError{Dir: dir, err: merr}
}

func (e *SkillError) Error() string {
	return fmt.Sprintf("invalid skill %s:\n%s", e.Dir, e.err.Error())
}

// Messages returns the individual validation messages in rule order.
func (e *SkillError) Messages() []string {
	wrapped := e.err.WrappedErrors()
	messages := make([]string, 0, len(wrapped))
	for _, err := range wrapped {
		messages = append(messages, err.Error())
	}
	return messages
}

func (e *SkillError) Unwrap() error {
	return e.err
}

func listFormatFunc(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, "  - "+err.Error())
	}
	return strings.Join(lines, "\n")
}
