//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/auth"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/connector"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/notify"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/reporting"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestJWTSecret signs tokens issued by the test user service
const TestJWTSecret = "integration-test-secret-0123456789abcdef"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	EquipmentService  equipment.EquipmentService
	LabelService      equipment.LabelService
	CardekService     cardek.CardekService
	LoanService       instruments.InstrumentLoanService
	NCRService        ncr.NCRService
	UserService       users.UserService
	UploadService     files.UploadService
	ReportService     reports.ReportService
	MonitoringService monitoring.MonitoringService
	TokenIssuer       users.TokenIssuer

	// Infrastructure
	DBContext   *persistence.TestContext
	StorageRoot string
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup local file storage
	storageSettings := &config.StorageSettings{
		Backend:         config.LocalStorageBackend,
		Root:            t.TempDir(),
		MaxUploadSizeMB: 1,
	}
	fileConnector, err := connector.NewFileConnector(context.Background(), storageSettings, logger)
	require.NoError(t, err, "Failed to create file connector")

	tokenIssuer, err := auth.NewJWTIssuer(&config.AuthSettings{
		Enabled: true,
		Secret:  TestJWTSecret,
		Issuer:  "caltrack-test",
	})
	require.NoError(t, err, "Failed to create token issuer")

	equipmentService, err := NewEquipmentService(dbContext.EquipmentRepo, dbContext.CardekRepo, logger)
	require.NoError(t, err, "Failed to create EquipmentService")

	labelService, err := NewLabelService(dbContext.EquipmentRepo, reporting.QRCodePNG)
	require.NoError(t, err, "Failed to create LabelService")

	cardekService, err := NewCardekService(dbContext.CardekRepo, dbContext.EquipmentRepo, logger)
	require.NoError(t, err, "Failed to create CardekService")

	loanService, err := NewInstrumentLoanService(dbContext.LoanRepo, dbContext.EquipmentRepo, logger)
	require.NoError(t, err, "Failed to create InstrumentLoanService")

	ncrService, err := NewNCRService(dbContext.NCRRepo, logger)
	require.NoError(t, err, "Failed to create NCRService")

	userService, err := NewUserService(dbContext.UserRepo, auth.BcryptHasher{}, tokenIssuer, logger)
	require.NoError(t, err, "Failed to create UserService")

	uploadService, err := NewUploadService(fileConnector, storageSettings.MaxUploadBytes(), logger)
	require.NoError(t, err, "Failed to create UploadService")

	reportService, err := NewReportService(
		dbContext.NCRRepo,
		dbContext.LoanRepo,
		logger,
		reporting.NewPDFRenderer(),
		reporting.NewXLSXRenderer(),
	)
	require.NoError(t, err, "Failed to create ReportService")

	monitoringService, err := NewMonitoringService(dbContext.EquipmentRepo, notify.NewLogNotifier(logger), logger)
	require.NoError(t, err, "Failed to create MonitoringService")

	return &TestServices{
		EquipmentService:  equipmentService,
		LabelService:      labelService,
		CardekService:     cardekService,
		LoanService:       loanService,
		NCRService:        ncrService,
		UserService:       userService,
		UploadService:     uploadService,
		ReportService:     reportService,
		MonitoringService: monitoringService,
		TokenIssuer:       tokenIssuer,
		DBContext:         dbContext,
		StorageRoot:       storageSettings.Root,
	}
}
