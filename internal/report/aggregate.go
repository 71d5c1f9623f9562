package report

import (
	"time"

	"github.com/yukikurage/kiroku/internal/constants"
	"github.com/yukikurage/kiroku/internal/models"
	"github.com/yukikurage/kiroku/internal/symptom"
)

// Entry is a record with its stiffness decoded.
type Entry struct {
	Record    models.Record
	Stiffness symptom.Stiffness
}

// Series holds one value per record, in the records' order. Every slice has
// the same length.
type Series struct {
	Labels        []string `json:"labels"`
	NumbnessData  []int    `json:"numbness_data"`
	RightHandData []int    `json:"r_hand_data"`
	LeftHandData  []int    `json:"l_hand_data"`
	RightKneeData []int    `json:"r_knee_data"`
	LeftKneeData  []int    `json:"l_knee_data"`
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// StiffnessData returns the series of region r.
func (s Series) StiffnessData(r symptom.Region) []int {
	switch r {
	case symptom.RegionRightHand:
		return s.RightHandData
	case symptom.RegionLeftHand:
		return s.LeftHandData
	case symptom.RegionRightKnee:
		return s.RightKneeData
	case symptom.RegionLeftKnee:
		return s.LeftKneeData
	default:
		return nil
	}
}

// Report is the aggregated view of a date range.
type Report struct {
	Range   Range
	Series  Series
	Entries []Entry
}

// Decode attaches decoded stiffness to each record.
func Decode(records []models.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{Record: r, Stiffness: symptom.DecodeStiffness(r.Stiffness)}
	}
	return entries
}

// Aggregate builds the series from records already sorted by created_at
// ascending. Labels are rendered in loc.
func Aggregate(records []models.Record, loc *time.Location) ([]Entry, Series) {
	entries := Decode(records)

	n := len(entries)
	series := Series{
		Labels:        make([]string, n),
		NumbnessData:  make([]int, n),
		RightHandData: make([]int, n),
		LeftHandData:  make([]int, n),
		RightKneeData: make([]int, n),
		LeftKneeData:  make([]int, n),
	}

	for i, e := range entries {
		series.Labels[i] = e.Record.CreatedAt.In(loc).Format(constants.ChartLabelLayout)
		series.NumbnessData[i] = e.Record.NumbnessStrength
		series.RightHandData[i] = e.Stiffness.StrengthOf(symptom.RegionRightHand)
		series.LeftHandData[i] = e.Stiffness.StrengthOf(symptom.RegionLeftHand)
		series.RightKneeData[i] = e.Stiffness.StrengthOf(symptom.RegionRightKnee)
		series.LeftKneeData[i] = e.Stiffness.StrengthOf(symptom.RegionLeftKnee)
	}

	return entries, series
}

// Build assembles the report for rng from its records.
func Build(rng Range, records []models.Record, loc *time.Location) Report {
	entries, series := Aggregate(records, loc)
	return Report{Range: rng, Series: series, Entries: entries}
}
