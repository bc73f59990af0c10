package response

import (
	"entry-registry/internal/usecase/queries"
)

type ResourceLineResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type SummaryResponse struct {
	Name      string                 `json:"name"`
	BuildTime float64                `json:"buildTime"`
	Resources []ResourceLineResponse `json:"resources"`
}

func FromSummaryView(v *queries.SummaryView) *SummaryResponse {
	res := &SummaryResponse{
		Name:      v.Name,
		BuildTime: v.BuildTime,
		Resources: make([]ResourceLineResponse, len(v.Resources)),
	}
	for i, r := range v.Resources {
		res.Resources[i] = ResourceLineResponse{Name: r.Name, Quantity: r.Quantity}
	}
	return res
}
