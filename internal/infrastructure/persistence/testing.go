//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	EquipmentRepo equipment.EquipmentRepository
	CardekRepo    cardek.CardekRepository
	LoanRepo      instruments.InstrumentLoanRepository
	NCRRepo       ncr.NCRRepository
	UserRepo      users.UserRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type:        config.SqliteDbType,
			DSN:         ":memory:",
			AutoMigrate: true,
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:        config.PostgresDbType,
			DSN:         "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name:        uniqueDBName,
			AutoMigrate: true,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	logger := testutil.SetupTestLogger(t)

	repos, err := NewRepositories(db, logger)
	require.NoError(t, err)

	return &TestContext{
		DB:            db,
		EquipmentRepo: repos.Equipment,
		CardekRepo:    repos.Cardek,
		LoanRepo:      repos.Loans,
		NCRRepo:       repos.NCRs,
		UserRepo:      repos.Users,
	}
}

// CreateTestEquipment creates scheduled equipment with default values
func CreateTestEquipment(t *testing.T, jftNo string, calibrationDate time.Time, frequency string) *equipment.Equipment {
	t.Helper()

	e := &equipment.Equipment{
		ID:              uuid.NewString(),
		JFTNo:           jftNo,
		Description:     "Micrometer 0-25mm",
		Department:      "Quality",
		Location:        "Lab 1",
		Frequency:       frequency,
		CalibrationDate: calibrationDate,
		DateTimeCreated: time.Now(),
	}
	_ = e.ScheduleNextCalibration()
	return e
}

// CreateTestLoan creates an open loan of e issued at issuedAt
func CreateTestLoan(t *testing.T, e *equipment.Equipment, borrower string, issuedAt time.Time) *instruments.InstrumentLoan {
	t.Helper()

	return &instruments.InstrumentLoan{
		ID:              uuid.NewString(),
		EquipmentID:     e.ID,
		JFTNo:           e.JFTNo,
		Borrower:        borrower,
		Department:      e.Department,
		IssuedAt:        issuedAt,
		Status:          instruments.LoanStatusIssued,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestNCR creates an open NCR dated date
func CreateTestNCR(t *testing.T, ncrNo string, date time.Time, source string) *ncr.NCR {
	t.Helper()

	return &ncr.NCR{
		ID:              uuid.NewString(),
		NCRNo:           ncrNo,
		Date:            date,
		Source:          source,
		Department:      "Machining",
		Description:     "Surface finish out of spec",
		Quantity:        3,
		Status:          ncr.StatusOpen,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestUser creates an active account with a dummy hash
func CreateTestUser(t *testing.T, username, role string) *users.User {
	t.Helper()

	return &users.User{
		ID:              uuid.NewString(),
		Username:        username,
		Role:            role,
		PasswordHash:    "$2a$10$abcdefghijklmnopqrstuv",
		Active:          true,
		DateTimeCreated: time.Now(),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
