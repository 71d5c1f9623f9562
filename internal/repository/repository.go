package repository

import (
	"context"
	"time"

	"github.com/yukikurage/kiroku/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// DeleteWithRecords deletes a user and every record they own in one
	// transaction. It returns gorm.ErrRecordNotFound when the user does not exist.
	DeleteWithRecords(ctx context.Context, id uint64) error
}

// RecordRepository defines the interface for symptom record data access
type RecordRepository interface {
	// Create persists a new record
	Create(ctx context.Context, record *models.Record) error

	// FindByID finds a record by ID regardless of owner
	FindByID(ctx context.Context, id uint64) (*models.Record, error)

	// ListByOwner lists an owner's records, newest date first and, within a
	// date, newest submission first
	ListByOwner(ctx context.Context, userID uint64) ([]models.Record, error)

	// ListByOwnerCreatedBetween lists an owner's records whose created_at lies
	// within [from, to], oldest first
	ListByOwnerCreatedBetween(ctx context.Context, userID uint64, from, to time.Time) ([]models.Record, error)

	// Delete permanently removes a record
	Delete(ctx context.Context, id uint64) error
}
