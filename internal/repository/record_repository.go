package repository

import (
	"context"
	"time"

	"github.com/yukikurage/kiroku/internal/database"
	"github.com/yukikurage/kiroku/internal/models"
	"gorm.io/gorm"
)

// GormRecordRepository is a GORM implementation of RecordRepository
type GormRecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &GormRecordRepository{db: db}
}

// Create persists a new record
func (r *GormRecordRepository) Create(ctx context.Context, record *models.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID finds a record by ID
func (r *GormRecordRepository) FindByID(ctx context.Context, id uint64) (*models.Record, error) {
	var record models.Record
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByOwner lists an owner's records by date, then submission time, both descending
func (r *GormRecordRepository) ListByOwner(ctx context.Context, userID uint64) ([]models.Record, error) {
	records := []models.Record{}
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Order("records.date DESC").
		Order("records.created_at DESC").
		Order("records.id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListByOwnerCreatedBetween lists an owner's records submitted within [from, to], oldest first
func (r *GormRecordRepository) ListByOwnerCreatedBetween(ctx context.Context, userID uint64, from, to time.Time) ([]models.Record, error) {
	records := []models.Record{}
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID), database.CreatedBetween(from, to)).
		Order("records.created_at ASC").
		Order("records.id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete permanently removes a record
func (r *GormRecordRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Record{}, id).Error
}
