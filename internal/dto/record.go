package dto

import (
	"time"

	"github.com/yukikurage/kiroku/internal/constants"
	"github.com/yukikurage/kiroku/internal/models"
	"github.com/yukikurage/kiroku/internal/report"
	"github.com/yukikurage/kiroku/internal/symptom"
)

// PartDTO is a body part with its display label
type PartDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RecordDTO represents a symptom record in API responses
type RecordDTO struct {
	ID               uint64                 `json:"id"`
	Date             string                 `json:"date"`
	CreatedAt        time.Time              `json:"created_at"`
	NumbnessStrength int                    `json:"numbness_strength"`
	NumbnessParts    []string               `json:"numbness_parts"`
	Stiffness        symptom.Stiffness      `json:"stiffness"`
	StiffnessParts   []PartDTO              `json:"stiffness_parts"`
	RegionStrengths  map[symptom.Region]int `json:"region_strengths"`
	Memo             string                 `json:"memo"`
}

// ToPartDTOs labels part identifiers
func ToPartDTOs(ids []string) []PartDTO {
	parts := make([]PartDTO, len(ids))
	for i, id := range ids {
		parts[i] = PartDTO{ID: id, Label: symptom.PartLabel(id)}
	}
	return parts
}

// ToRecordDTO converts a record model to DTO, decoding its stiffness
func ToRecordDTO(record models.Record) RecordDTO {
	return toRecordDTO(record, symptom.DecodeStiffness(record.Stiffness))
}

// ToRecordDTOs converts a list of records
func ToRecordDTOs(records []models.Record) []RecordDTO {
	result := make([]RecordDTO, len(records))
	for i, r := range records {
		result[i] = ToRecordDTO(r)
	}
	return result
}

// ToEntryDTOs converts report entries, whose stiffness is already decoded
func ToEntryDTOs(entries []report.Entry) []RecordDTO {
	result := make([]RecordDTO, len(entries))
	for i, e := range entries {
		result[i] = toRecordDTO(e.Record, e.Stiffness)
	}
	return result
}

func toRecordDTO(record models.Record, stiffness symptom.Stiffness) RecordDTO {
	strengths := make(map[symptom.Region]int, len(symptom.Regions))
	for _, r := range symptom.Regions {
		strengths[r] = stiffness.StrengthOf(r)
	}

	return RecordDTO{
		ID:               record.ID,
		Date:             time.Time(record.Date).Format(constants.DateLayout),
		CreatedAt:        record.CreatedAt,
		NumbnessStrength: record.NumbnessStrength,
		NumbnessParts:    symptom.SplitParts(record.NumbnessParts),
		Stiffness:        stiffness,
		StiffnessParts:   ToPartDTOs(stiffness.Parts),
		RegionStrengths:  strengths,
		Memo:             record.Memo,
	}
}
