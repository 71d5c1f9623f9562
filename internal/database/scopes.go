package database

import (
	"time"

	"gorm.io/gorm"
)

// OwnedBy restricts a records query to one owner.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("records.user_id = ?", userID)
	}
}

// CreatedBetween restricts a records query to created_at within [from, to].
func CreatedBetween(from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("records.created_at >= ? AND records.created_at <= ?", from.UTC(), to.UTC())
	}
}
