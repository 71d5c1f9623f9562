package database

import (
	"fmt"

	"github.com/yukikurage/kiroku/internal/models"
	"gorm.io/gorm"
)

// recordIndexes back the two record listings: the owner's log ordered by
// date and the report window over created_at.
var recordIndexes = []struct {
	name    string
	columns string
}{
	{"idx_records_user_id_date", "user_id, date, created_at"},
	{"idx_records_user_id_created_at", "user_id, created_at"},
}

// EnsureIndexes creates the record indexes that do not exist yet.
func EnsureIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range recordIndexes {
		if migrator.HasIndex(&models.Record{}, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON records (%s)", idx.name, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
