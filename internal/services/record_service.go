package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/kiroku/internal/constants"
	"github.com/yukikurage/kiroku/internal/logging"
	"github.com/yukikurage/kiroku/internal/metrics"
	"github.com/yukikurage/kiroku/internal/models"
	"github.com/yukikurage/kiroku/internal/repository"
	"github.com/yukikurage/kiroku/internal/symptom"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrRecordNotFound    = errors.New("record not found")
	ErrRecordForbidden   = errors.New("record belongs to another user")
)

// RecordService handles symptom record business logic.
type RecordService struct {
	recordRepo repository.RecordRepository
	logger     logging.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(recordRepo repository.RecordRepository, logger logging.Logger, m *metrics.Metrics) *RecordService {
	return &RecordService{
		recordRepo: recordRepo,
		logger:     logger,
		metrics:    m,
		now:        time.Now,
	}
}

// CreateRecordInput represents a submitted symptom entry.
type CreateRecordInput struct {
	OwnerID           uint64
	Date              string
	NumbnessStrength  int
	NumbnessParts     []string
	StiffnessParts    []string
	StiffnessStrength map[symptom.Region]int
	Memo              string
}

// CreateRecord stores a new record stamped with the current UTC time.
func (s *RecordService) CreateRecord(ctx context.Context, input CreateRecordInput) (*models.Record, error) {
	date, err := time.Parse(constants.DateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFormat, input.Date)
	}

	stiffness, err := symptom.NewStiffness(input.StiffnessParts, input.StiffnessStrength).Encode()
	if err != nil {
		return nil, err
	}

	record := &models.Record{
		Date:             datatypes.Date(date),
		CreatedAt:        s.now().UTC(),
		NumbnessStrength: input.NumbnessStrength,
		NumbnessParts:    symptom.JoinParts(input.NumbnessParts),
		Stiffness:        stiffness,
		Memo:             input.Memo,
		UserID:           input.OwnerID,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.metrics.RecordCreated()
	s.logger.Info(ctx, "record created", "record_id", record.ID, "user_id", record.UserID)

	return record, nil
}

// ListRecords returns the owner's records, newest date first.
func (s *RecordService) ListRecords(ctx context.Context, ownerID uint64) ([]models.Record, error) {
	records, err := s.recordRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	s.logger.Debug(ctx, "records listed", "user_id", ownerID, "count", len(records))

	return records, nil
}

// DeleteRecord deletes a record owned by ownerID.
func (s *RecordService) DeleteRecord(ctx context.Context, ownerID, recordID uint64) error {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to find record: %w", err)
	}

	if record.UserID != ownerID {
		return ErrRecordForbidden
	}

	if err := s.recordRepo.Delete(ctx, recordID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	s.metrics.RecordDeleted()
	s.logger.Info(ctx, "record deleted", "record_id", recordID, "user_id", ownerID)

	return nil
}
