package summary

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("project not found")
	ErrNotAProject        = errors.New("entry is a resource and not a project")
	ErrDanglingDependency = errors.New("non-existent dependency found")
	ErrCyclicDependency   = errors.New("cyclic dependency found")
	ErrDependencyTooDeep  = errors.New("dependency tree too deep")
	ErrNumberOverflow     = errors.New("summary overflows the float64 range")
)

// CycleError reports the expansion path that re-entered one of its own names.
// The last element of Path equals an earlier one.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return ErrCyclicDependency.Error() + ": " + strings.Join(e.Path, " -> ")
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCyclicDependency
}
