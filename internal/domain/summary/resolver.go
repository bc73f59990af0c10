package summary

import (
	"math"
	"slices"

	"entry-registry/internal/domain/entry"
	"entry-registry/internal/pkg/errs"
)

const DefaultMaxDepth = 512

// EntryReader is the read side of the registry the resolver walks.
type EntryReader interface {
	Find(name string) (*entry.Entry, bool)
}

type Resolver struct {
	maxDepth int
}

func NewResolver(maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Resolver{maxDepth: maxDepth}
}

func (r *Resolver) MaxDepth() int {
	return r.maxDepth
}

// Summarize flattens the named project into quantity-weighted leaf lines and
// totals their build time.
func (r *Resolver) Summarize(reader EntryReader, name string) (*Summary, error) {
	root, ok := reader.Find(name)
	if !ok {
		return nil, errs.Wrapf(ErrNotFound, "project %s", name)
	}
	if !root.IsProject() {
		return nil, errs.Wrapf(ErrNotAProject, "entry %s", name)
	}

	w := &walker{
		reader:   reader,
		maxDepth: r.maxDepth,
		onPath:   map[string]struct{}{name: {}},
		path:     []string{name},
	}
	var err error
	root.EachRequirement(func(req entry.Requirement) bool {
		err = w.expand(req.Name(), req.Quantity().Value(), 1)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	if len(w.lines) == 0 {
		return nil, errs.Wrapf(ErrDanglingDependency, "project %s", name)
	}

	// Every line was appended from a resource, so the lookup cannot miss.
	var total float64
	for _, l := range w.lines {
		leaf, _ := reader.Find(l.Name)
		total += l.Quantity * leaf.BuildTime().Value()
		if !isFinite(total) {
			return nil, errs.Wrapf(ErrNumberOverflow, "build time of %s", name)
		}
	}

	return &Summary{
		Name:      name,
		BuildTime: total,
		Resources: w.lines,
		Dangling:  w.dangling,
	}, nil
}

type walker struct {
	reader   EntryReader
	maxDepth int
	onPath   map[string]struct{}
	path     []string
	lines    []Line
	dangling []string
}

func (w *walker) expand(name string, multiplier float64, depth int) error {
	if depth > w.maxDepth {
		return errs.Wrapf(ErrDependencyTooDeep, "at %s (limit %d)", name, w.maxDepth)
	}

	e, ok := w.reader.Find(name)
	if !ok {
		w.dangling = append(w.dangling, name)
		return nil
	}
	if e.IsResource() {
		w.lines = append(w.lines, Line{Name: name, Quantity: multiplier})
		return nil
	}

	if _, seen := w.onPath[name]; seen {
		return &CycleError{Path: append(slices.Clone(w.path), name)}
	}
	w.onPath[name] = struct{}{}
	w.path = append(w.path, name)

	var err error
	e.EachRequirement(func(req entry.Requirement) bool {
		m := multiplier * req.Quantity().Value()
		if !isFinite(m) {
			err = errs.Wrapf(ErrNumberOverflow, "quantity of %s under %s", req.Name(), name)
			return false
		}
		err = w.expand(req.Name(), m, depth+1)
		return err == nil
	})

	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, name)
	return err
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
