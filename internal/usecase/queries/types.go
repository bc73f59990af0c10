package queries

import "entry-registry/internal/pkg/errs"

var (
	ErrEntryNotFound    = errs.New("entry not found")
	ErrEntryQueryFailed = errs.New("entry query failed")
)

type RequirementView struct {
	Name     string
	Quantity float64
}

// EntryView is a read model of a registered entry. BuildTime is set for
// resources only; RequiredResources for projects only.
type EntryView struct {
	Type              string
	Name              string
	BuildTime         *float64
	RequiredResources []RequirementView
}

type ResourceLineView struct {
	Name     string
	Quantity float64
}

type SummaryView struct {
	Name      string
	BuildTime float64
	Resources []ResourceLineView
}
