package request

import (
	"strings"

	"entry-registry/internal/domain/entry"
	"entry-registry/internal/pkg/errs"
	"entry-registry/internal/usecase/commands"
)

var (
	ErrMissingBuildTime         = errs.New("resource requires buildTime")
	ErrMissingRequiredResources = errs.New("project requires requiredResources")
	ErrMixedVariant             = errs.New("entry mixes resource and project fields")
	ErrMissingQuantity          = errs.New("required resource requires name and quantity")
)

type RequiredResourceRequest struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
}

// ProjectEntryRequest is the POST /projectEntry body. Which fields are mandatory
// depends on Type, so presence is checked in ToParams rather than by binding tags.
type ProjectEntryRequest struct {
	Type              string                    `json:"type"`
	Name              string                    `json:"name"`
	BuildTime         *float64                  `json:"buildTime"`
	RequiredResources []RequiredResourceRequest `json:"requiredResources"`
}

// ToParams checks the body against the variant its type names. An unknown type
// is passed through untouched so the registry reports it as an invalid type.
// Blank names are left to the registry, which reports them after the build time
// and duplicate checks.
func (r *ProjectEntryRequest) ToParams() (commands.RegisterEntryParams, error) {
	params := commands.RegisterEntryParams{
		Type: r.Type,
		Name: r.Name,
	}

	switch entry.Kind(r.Type) {
	case entry.KindResource:
		if r.BuildTime == nil {
			return commands.RegisterEntryParams{}, ErrMissingBuildTime
		}
		if r.RequiredResources != nil {
			return commands.RegisterEntryParams{}, ErrMixedVariant
		}
		params.BuildTime = *r.BuildTime
	case entry.KindProject:
		if r.RequiredResources == nil {
			return commands.RegisterEntryParams{}, ErrMissingRequiredResources
		}
		if r.BuildTime != nil {
			return commands.RegisterEntryParams{}, ErrMixedVariant
		}
		params.RequiredResources = make([]commands.RequiredResourceParams, len(r.RequiredResources))
		for i, rr := range r.RequiredResources {
			if strings.TrimSpace(rr.Name) == "" || rr.Quantity == nil {
				return commands.RegisterEntryParams{}, ErrMissingQuantity
			}
			params.RequiredResources[i] = commands.RequiredResourceParams{Name: rr.Name, Quantity: *rr.Quantity}
		}
	}

	return params, nil
}
