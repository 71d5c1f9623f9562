package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/kiroku/internal/database"
	"github.com/yukikurage/kiroku/internal/logging"
	"github.com/yukikurage/kiroku/internal/metrics"
	"github.com/yukikurage/kiroku/internal/models"
	"github.com/yukikurage/kiroku/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db            *gorm.DB
	users         repository.UserRepository
	records       repository.RecordRepository
	authService   *AuthService
	recordService *RecordService
	reportService *ReportService
	metrics       *metrics.Metrics
	tokyo         *time.Location
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	users := repository.NewUserRepository(db)
	records := repository.NewRecordRepository(db)
	m := metrics.New()
	logger := logging.Discard()

	return serviceTestEnv{
		db:            db,
		users:         users,
		records:       records,
		authService:   NewAuthService(users),
		recordService: NewRecordService(records, logger, m),
		reportService: NewReportService(records, tokyo, logger, m),
		metrics:       m,
		tokyo:         tokyo,
	}
}

func (env serviceTestEnv) signup(t *testing.T, username string) *models.User {
	t.Helper()

	user, err := env.authService.Signup(context.Background(), SignupInput{
		Username:             username,
		Password:             "supersecret",
		PasswordConfirmation: "supersecret",
	})
	require.NoError(t, err)
	return user
}

// fixClock makes the record service stamp records with the given instants in turn.
func (env serviceTestEnv) fixClock(instants ...time.Time) {
	i := 0
	env.recordService.now = func() time.Time {
		t := instants[i]
		if i < len(instants)-1 {
			i++
		}
		return t
	}
}

func requireCounter(t *testing.T, m *metrics.Metrics, name, help string, value int) {
	t.Helper()

	expected := fmt.Sprintf("# HELP %s %s\n# TYPE %s counter\n%s %d\n", name, help, name, name, value)
	require.NoError(t, testutil.GatherAndCompare(m.Gatherer(), strings.NewReader(expected), name))
}
