package dto

import "github.com/yukikurage/kiroku/internal/symptom"

// RegionDTO is a stiffness region with its display label
type RegionDTO struct {
	ID    symptom.Region `json:"id"`
	Label string         `json:"label"`
}

// TaxonomyDTO lists everything a client needs to build the entry form
type TaxonomyDTO struct {
	Hands   []symptom.HandParts `json:"hands"`
	Regions []RegionDTO         `json:"regions"`
}

// NewTaxonomyDTO builds the taxonomy response
func NewTaxonomyDTO() TaxonomyDTO {
	regions := make([]RegionDTO, 0, len(symptom.Regions))
	for _, r := range symptom.Regions {
		regions = append(regions, RegionDTO{ID: r, Label: r.Label()})
	}

	return TaxonomyDTO{
		Hands:   symptom.Taxonomy(),
		Regions: regions,
	}
}
