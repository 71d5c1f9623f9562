package database

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/kiroku/internal/config"
	"github.com/yukikurage/kiroku/internal/models"
	"gorm.io/datatypes"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", SQLiteDSN(":memory:"))
	assert.Equal(t, "file:kiroku.db?cache=shared&_foreign_keys=on", SQLiteDSN("file:kiroku.db?cache=shared"))
	assert.Equal(t, "kiroku.db?_fk=1", SQLiteDSN("kiroku.db?_fk=1"))
}

func TestOpen_SQLiteEnforcesOwnerForeignKey(t *testing.T) {
	db, err := Open(&config.Config{DBDriver: config.DriverSQLite, DatabaseURL: ":memory:", GinMode: "release"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, Migrate(db))

	orphan := &models.Record{
		Date:      datatypes.Date(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		UserID:    999,
	}
	require.Error(t, db.Create(orphan).Error)

	owner := &models.User{Username: "owner", PasswordHash: "hashed"}
	require.NoError(t, db.Create(owner).Error)

	owned := &models.Record{
		Date:      orphan.Date,
		CreatedAt: orphan.CreatedAt,
		UserID:    owner.ID,
	}
	require.NoError(t, db.Create(owned).Error)
}

func TestMigrate_NumbnessPartsIsUnboundedText(t *testing.T) {
	db, err := Open(&config.Config{DBDriver: config.DriverSQLite, DatabaseURL: ":memory:", GinMode: "release"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, Migrate(db))

	columns, err := db.Migrator().ColumnTypes(&models.Record{})
	require.NoError(t, err)

	var found bool
	for _, col := range columns {
		if col.Name() == "numbness_parts" {
			found = true
			assert.Equal(t, "text", strings.ToLower(col.DatabaseTypeName()))
		}
	}
	require.True(t, found)
}
