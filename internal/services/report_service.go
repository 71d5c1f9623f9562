package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yukikurage/kiroku/internal/logging"
	"github.com/yukikurage/kiroku/internal/metrics"
	"github.com/yukikurage/kiroku/internal/report"
	"github.com/yukikurage/kiroku/internal/repository"
	"github.com/yukikurage/kiroku/internal/symptom"
)

// ReportService builds date-range reports in a fixed local time zone.
type ReportService struct {
	recordRepo repository.RecordRepository
	location   *time.Location
	logger     logging.Logger
	metrics    *metrics.Metrics
}

// NewReportService creates a new ReportService.
func NewReportService(recordRepo repository.RecordRepository, location *time.Location, logger logging.Logger, m *metrics.Metrics) *ReportService {
	return &ReportService{
		recordRepo: recordRepo,
		location:   location,
		logger:     logger,
		metrics:    m,
	}
}

// Location returns the zone used to interpret dates and render labels.
func (s *ReportService) Location() *time.Location {
	return s.location
}

// BuildReport aggregates the owner's records submitted between startDate
// 00:00:00 and endDate 23:59:59 local time. Range errors (report.ErrMissingRange,
// report.ErrInvalidDate) are returned before the store is queried.
func (s *ReportService) BuildReport(ctx context.Context, ownerID uint64, startDate, endDate string) (*report.Report, error) {
	rng, err := report.ParseRange(startDate, endDate, s.location)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "report range resolved", "user_id", ownerID, "from", rng.From, "to", rng.To)

	records, err := s.recordRepo.ListByOwnerCreatedBetween(ctx, ownerID, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	for _, r := range records {
		if _, err := symptom.ParseStiffness(r.Stiffness); err != nil {
			s.logger.Warn(ctx, "stiffness content unreadable, charted as zero", "record_id", r.ID, "error", err)
		}
	}

	rep := report.Build(rng, records, s.location)
	s.logger.Debug(ctx, "report built", "user_id", ownerID, "points", rep.Series.Len())
	s.metrics.ReportGenerated()

	return &rep, nil
}
