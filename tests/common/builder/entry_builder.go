//go:build unit || e2e

package builder

import (
	"entry-registry/internal/domain/entry"
	reqdto "entry-registry/internal/handler/dto/request"
	"entry-registry/internal/usecase/commands"
	"entry-registry/internal/pkg/ptr"
	"entry-registry/internal/usecase/queries"
)

type Requirement struct {
	Name     string
	Quantity float64
}

type EntryBuilder struct {
	Type              string
	Name              string
	BuildTime         float64
	RequiredResources []Requirement
}

func NewResourceBuilder() *EntryBuilder {
	return &EntryBuilder{
		Type:      string(entry.KindResource),
		Name:      "wood",
		BuildTime: 2,
	}
}

func NewProjectBuilder() *EntryBuilder {
	return &EntryBuilder{
		Type: string(entry.KindProject),
		Name: "table",
		RequiredResources: []Requirement{
			{Name: "wood", Quantity: 4},
			{Name: "nail", Quantity: 8},
		},
	}
}

func (b *EntryBuilder) With(mutate func(*EntryBuilder)) *EntryBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EntryBuilder) BuildDomain() (*entry.Entry, error) {
	if b.Type == string(entry.KindResource) {
		return entry.NewResource(b.Name, b.BuildTime)
	}
	reqs := make([]entry.Requirement, 0, len(b.RequiredResources))
	for _, r := range b.RequiredResources {
		req, err := entry.NewRequirement(r.Name, r.Quantity)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return entry.NewProject(b.Name, reqs)
}

// MustBuildDomain is for fixtures that are valid by construction.
func (b *EntryBuilder) MustBuildDomain() *entry.Entry {
	e, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return e
}

func (b *EntryBuilder) BuildParams() commands.RegisterEntryParams {
	p := commands.RegisterEntryParams{Type: b.Type, Name: b.Name}
	if b.Type == string(entry.KindResource) {
		p.BuildTime = b.BuildTime
		return p
	}
	p.RequiredResources = make([]commands.RequiredResourceParams, len(b.RequiredResources))
	for i, r := range b.RequiredResources {
		p.RequiredResources[i] = commands.RequiredResourceParams{Name: r.Name, Quantity: r.Quantity}
	}
	return p
}

func (b *EntryBuilder) BuildRequestDTO() reqdto.ProjectEntryRequest {
	req := reqdto.ProjectEntryRequest{Type: b.Type, Name: b.Name}
	if b.Type == string(entry.KindResource) {
		req.BuildTime = ptr.Of(b.BuildTime)
		return req
	}
	req.RequiredResources = make([]reqdto.RequiredResourceRequest, len(b.RequiredResources))
	for i, r := range b.RequiredResources {
		req.RequiredResources[i] = reqdto.RequiredResourceRequest{Name: r.Name, Quantity: ptr.Of(r.Quantity)}
	}
	return req
}

func (b *EntryBuilder) BuildView() *queries.EntryView {
	v := &queries.EntryView{Type: b.Type, Name: b.Name}
	if b.Type == string(entry.KindResource) {
		v.BuildTime = ptr.Of(b.BuildTime)
		return v
	}
	v.RequiredResources = make([]queries.RequirementView, len(b.RequiredResources))
	for i, r := range b.RequiredResources {
		v.RequiredResources[i] = queries.RequirementView{Name: r.Name, Quantity: r.Quantity}
	}
	return v
}

// Fluent builder methods
func (b *EntryBuilder) WithType(t string) *EntryBuilder {
	b.Type = t
	return b
}

func (b *EntryBuilder) WithName(name string) *EntryBuilder {
	b.Name = name
	return b
}

func (b *EntryBuilder) WithBuildTime(bt float64) *EntryBuilder {
	b.BuildTime = bt
	return b
}

func (b *EntryBuilder) WithRequirements(reqs ...Requirement) *EntryBuilder {
	b.RequiredResources = reqs
	return b
}

func (b *EntryBuilder) Requires(name string, quantity float64) *EntryBuilder {
	b.RequiredResources = append(b.RequiredResources, Requirement{Name: name, Quantity: quantity})
	return b
}

// TableScenario returns wood{2}, nail{1} and table{wood×4, nail×8} in registration order.
func TableScenario() []*EntryBuilder {
	return []*EntryBuilder{
		NewResourceBuilder().WithName("wood").WithBuildTime(2),
		NewResourceBuilder().WithName("nail").WithBuildTime(1),
		NewProjectBuilder().WithName("table").WithRequirements(
			Requirement{Name: "wood", Quantity: 4},
			Requirement{Name: "nail", Quantity: 8},
		),
	}
}

// NewChairBuilder returns chair{table×2}, which nests TableScenario.
func NewChairBuilder() *EntryBuilder {
	return NewProjectBuilder().WithName("chair").WithRequirements(Requirement{Name: "table", Quantity: 2})
}
