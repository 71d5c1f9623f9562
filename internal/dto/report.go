package dto

import "github.com/yukikurage/kiroku/internal/report"

// ReportDTO represents a date-range report in API responses
type ReportDTO struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Chart     report.Chart  `json:"chart"`
	Series    report.Series `json:"series"`
	Records   []RecordDTO   `json:"records"`
}

// ToReportDTO converts an aggregated report to DTO
func ToReportDTO(rep report.Report) ReportDTO {
	return ReportDTO{
		StartDate: rep.Range.StartDate,
		EndDate:   rep.Range.EndDate,
		Chart:     rep.Series.Chart(),
		Series:    rep.Series,
		Records:   ToEntryDTOs(rep.Entries),
	}
}
