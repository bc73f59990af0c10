package entry

import (
	"math"
	"strings"

	"entry-registry/internal/pkg/errs"
)

type BuildTime struct {
	value float64
}

func NewBuildTime(v float64) (BuildTime, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return BuildTime{}, ErrInvalidNumber
	}
	if v < 0 {
		return BuildTime{}, ErrNegativeBuildTime
	}
	return BuildTime{value: v}, nil
}

func (b BuildTime) Value() float64 {
	return b.value
}

// Quantity is a multiplier on a requirement. Zero and negative values pass;
// only non-finite numbers are rejected.
type Quantity struct {
	value float64
}

func NewQuantity(v float64) (Quantity, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() float64 {
	return q.value
}

// Requirement is a weak, by-name reference from a project to another entry.
type Requirement struct {
	name     string
	quantity Quantity
}

func NewRequirement(name string, quantity float64) (Requirement, error) {
	if strings.TrimSpace(name) == "" {
		return Requirement{}, ErrEmptyReference
	}
	q, err := NewQuantity(quantity)
	if err != nil {
		return Requirement{}, errs.Wrapf(err, "required resource %s", name)
	}
	return Requirement{name: name, quantity: q}, nil
}

func (r Requirement) Name() string       { return r.name }
func (r Requirement) Quantity() Quantity { return r.quantity }
