package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockUserRepository(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

var (
	deleteRecordsSQL = regexp.QuoteMeta(`DELETE FROM "records" WHERE user_id = $1`)
	deleteUserSQL    = regexp.QuoteMeta(`DELETE FROM "users" WHERE "users"."id" = $1`)
)

func TestDeleteWithRecords_CommitsBothDeletesInOneTransaction(t *testing.T) {
	repo, mock := newMockUserRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteRecordsSQL).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(deleteUserSQL).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteWithRecords(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithRecords_RollsBackWhenRecordDeleteFails(t *testing.T) {
	repo, mock := newMockUserRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteRecordsSQL).WithArgs(int64(7)).WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	err := repo.DeleteWithRecords(context.Background(), 7)
	require.Error(t, err)
	require.Contains(t, err.Error(), "db down")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithRecords_RollsBackWhenUserMissing(t *testing.T) {
	repo, mock := newMockUserRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteRecordsSQL).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteUserSQL).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteWithRecords(context.Background(), 7)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
