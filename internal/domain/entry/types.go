package entry

import (
	"entry-registry/internal/pkg/errs"
)

type Kind string

const (
	KindResource Kind = "resource"
	KindProject  Kind = "project"
)

// NewKind accepts exactly "resource" or "project".
func NewKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindResource, KindProject:
		return k, nil
	default:
		return "", errs.Wrapf(ErrInvalidType, "type %q", s)
	}
}

func (k Kind) String() string {
	return string(k)
}
