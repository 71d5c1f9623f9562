package models

import (
	"time"

	"gorm.io/datatypes"
)

// Record is one symptom-log entry. Records are immutable once created.
type Record struct {
	ID               uint64         `gorm:"primarykey" json:"id"`
	Date             datatypes.Date `gorm:"not null" json:"date"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
	NumbnessStrength int            `gorm:"not null;default:0" json:"numbness_strength"`
	NumbnessParts    string         `gorm:"type:text;not null" json:"numbness_parts"`
	Stiffness        string         `gorm:"type:text" json:"stiffness"`
	Memo             string         `gorm:"type:text" json:"memo"`
	UserID           uint64         `gorm:"not null" json:"user_id"`
}
