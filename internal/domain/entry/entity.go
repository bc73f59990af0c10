package entry

import (
	"slices"
	"strings"

	"entry-registry/internal/pkg/errs"
)

// Entry is either a resource (leaf with a build time) or a project (list of
// requirements). It is immutable once constructed.
type Entry struct {
	kind         Kind
	name         string
	buildTime    BuildTime
	requirements []Requirement
}

func NewResource(name string, buildTime float64) (*Entry, error) {
	bt, err := NewBuildTime(buildTime)
	if err != nil {
		return nil, err
	}
	name, err = validateName(name)
	if err != nil {
		return nil, err
	}

	return &Entry{
		kind:      KindResource,
		name:      name,
		buildTime: bt,
	}, nil
}

func NewProject(name string, requirements []Requirement) (*Entry, error) {
	if dup, ok := findDuplicate(requirements); ok {
		return nil, errs.Wrapf(ErrDuplicateRequiredResource, "project %s requires %s more than once", name, dup)
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	return &Entry{
		kind:         KindProject,
		name:         name,
		requirements: slices.Clone(requirements),
	}, nil
}

// validateName rejects blank names. Accepted names are kept byte for byte; the
// registry keys on the exact string.
func validateName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

func findDuplicate(requirements []Requirement) (string, bool) {
	seen := make(map[string]struct{}, len(requirements))
	for _, r := range requirements {
		if _, ok := seen[r.name]; ok {
			return r.name, true
		}
		seen[r.name] = struct{}{}
	}
	return "", false
}

func (e *Entry) IsResource() bool { return e.kind == KindResource }
func (e *Entry) IsProject() bool  { return e.kind == KindProject }

func (e *Entry) Kind() Kind           { return e.kind }
func (e *Entry) Name() string         { return e.name }
func (e *Entry) BuildTime() BuildTime { return e.buildTime }

// Requirements returns a copy; the entry's own slice is never exposed.
func (e *Entry) Requirements() []Requirement {
	return slices.Clone(e.requirements)
}

// EachRequirement iterates requirements in declaration order without copying.
func (e *Entry) EachRequirement(fn func(Requirement) bool) {
	for _, r := range e.requirements {
		if !fn(r) {
			return
		}
	}
}
