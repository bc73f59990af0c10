package response

import (
	"entry-registry/internal/usecase/queries"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

type RequiredResourceResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type EntryResponse struct {
	Type              string                     `json:"type"`
	Name              string                     `json:"name"`
	BuildTime         *float64                   `json:"buildTime,omitempty"`
	RequiredResources []RequiredResourceResponse `json:"requiredResources,omitempty"`
}

func FromEntryView(v *queries.EntryView) *EntryResponse {
	res := &EntryResponse{
		Type:      v.Type,
		Name:      v.Name,
		BuildTime: v.BuildTime,
	}
	if v.RequiredResources != nil {
		res.RequiredResources = make([]RequiredResourceResponse, len(v.RequiredResources))
		for i, r := range v.RequiredResources {
			res.RequiredResources[i] = RequiredResourceResponse{Name: r.Name, Quantity: r.Quantity}
		}
	}
	return res
}

func FromEntryList(items []*queries.EntryView) []*EntryResponse {
	res := make([]*EntryResponse, len(items))
	for i, it := range items {
		res[i] = FromEntryView(it)
	}
	return res
}
