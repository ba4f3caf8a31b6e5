//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockEquipmentService is a mock implementation of EquipmentService
type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) Create(ctx context.Context, e *equipment.Equipment) (*equipment.Equipment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentService) List(ctx context.Context, query *equipment.EquipmentQuery) ([]*equipment.Equipment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentService) GetByID(ctx context.Context, equipmentID string) (*equipment.Equipment, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentService) GetByJFTNo(ctx context.Context, jftNo string) (*equipment.Equipment, error) {
	args := m.Called(ctx, jftNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentService) Update(ctx context.Context, e *equipment.Equipment) (*equipment.Equipment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentService) Extend(ctx context.Context, equipmentID string, request *equipment.ExtensionRequest) (*equipment.Equipment, error) {
	args := m.Called(ctx, equipmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentService) DeleteByID(ctx context.Context, equipmentID string) error {
	args := m.Called(ctx, equipmentID)
	return args.Error(0)
}

// MockLabelService is a mock implementation of LabelService
type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) QRCode(ctx context.Context, equipmentID string, size int) ([]byte, error) {
	args := m.Called(ctx, equipmentID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockCardekService is a mock implementation of CardekService
type MockCardekService struct {
	mock.Mock
}

func (m *MockCardekService) Create(ctx context.Context, entry *cardek.CardekEntry) (*cardek.CardekEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardek.CardekEntry), args.Error(1)
}

func (m *MockCardekService) ListByEquipment(ctx context.Context, equipmentID string) ([]*cardek.CardekEntry, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cardek.CardekEntry), args.Error(1)
}

func (m *MockCardekService) GetByID(ctx context.Context, entryID string) (*cardek.CardekEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardek.CardekEntry), args.Error(1)
}

func (m *MockCardekService) Update(ctx context.Context, entry *cardek.CardekEntry) (*cardek.CardekEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardek.CardekEntry), args.Error(1)
}

func (m *MockCardekService) DeleteByID(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// MockInstrumentLoanService is a mock implementation of InstrumentLoanService
type MockInstrumentLoanService struct {
	mock.Mock
}

func (m *MockInstrumentLoanService) Issue(ctx context.Context, request *instruments.IssueRequest) (*instruments.InstrumentLoan, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instruments.InstrumentLoan), args.Error(1)
}

func (m *MockInstrumentLoanService) Return(ctx context.Context, loanID string, request *instruments.ReturnRequest) (*instruments.InstrumentLoan, error) {
	args := m.Called(ctx, loanID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instruments.InstrumentLoan), args.Error(1)
}

func (m *MockInstrumentLoanService) List(ctx context.Context, query *instruments.LoanQuery) ([]*instruments.InstrumentLoan, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*instruments.InstrumentLoan), args.Error(1)
}

func (m *MockInstrumentLoanService) GetByID(ctx context.Context, loanID string) (*instruments.InstrumentLoan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instruments.InstrumentLoan), args.Error(1)
}

func (m *MockInstrumentLoanService) DeleteByID(ctx context.Context, loanID string) error {
	args := m.Called(ctx, loanID)
	return args.Error(0)
}

// MockNCRService is a mock implementation of NCRService
type MockNCRService struct {
	mock.Mock
}

func (m *MockNCRService) Create(ctx context.Context, n *ncr.NCR) (*ncr.NCR, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ncr.NCR), args.Error(1)
}

func (m *MockNCRService) List(ctx context.Context, query *ncr.NCRQuery) ([]*ncr.NCR, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ncr.NCR), args.Error(1)
}

func (m *MockNCRService) GetByID(ctx context.Context, ncrID string) (*ncr.NCR, error) {
	args := m.Called(ctx, ncrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ncr.NCR), args.Error(1)
}

func (m *MockNCRService) Update(ctx context.Context, n *ncr.NCR) (*ncr.NCR, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ncr.NCR), args.Error(1)
}

func (m *MockNCRService) Close(ctx context.Context, ncrID string, disposition string) (*ncr.NCR, error) {
	args := m.Called(ctx, ncrID, disposition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ncr.NCR), args.Error(1)
}

func (m *MockNCRService) DeleteByID(ctx context.Context, ncrID string) error {
	args := m.Called(ctx, ncrID)
	return args.Error(0)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, request *users.CreateUserRequest) (*users.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, userID string, request *users.UpdateUserRequest) (*users.User, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) SetProfileImage(ctx context.Context, userID string, path string) (*users.User, error) {
	args := m.Called(ctx, userID, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (string, time.Time, *users.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return args.String(0), args.Get(1).(time.Time), nil, args.Error(3)
	}
	return args.String(0), args.Get(1).(time.Time), args.Get(2).(*users.User), args.Error(3)
}

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, category files.Category, header *multipart.FileHeader) (*files.StoredFile, error) {
	args := m.Called(ctx, category, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*files.StoredFile), args.Error(1)
}

func (m *MockUploadService) Download(ctx context.Context, filePath string) ([]byte, string, error) {
	args := m.Called(ctx, filePath)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockUploadService) Delete(ctx context.Context, filePath string) error {
	args := m.Called(ctx, filePath)
	return args.Error(0)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) NCRReport(ctx context.Context, filter *reports.NCRFilter) (*reports.NCRReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.NCRReport), args.Error(1)
}

func (m *MockReportService) LoanReport(ctx context.Context, filter *reports.LoanFilter) (*reports.LoanReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.LoanReport), args.Error(1)
}

func (m *MockReportService) RenderNCR(ctx context.Context, filter *reports.NCRFilter, format string) ([]byte, string, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockReportService) RenderLoans(ctx context.Context, filter *reports.LoanFilter, format string) ([]byte, string, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockMonitoringService is a mock implementation of MonitoringService
type MockMonitoringService struct {
	mock.Mock
}

func (m *MockMonitoringService) Overview(ctx context.Context, today time.Time) (*monitoring.CalibrationOverview, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.CalibrationOverview), args.Error(1)
}

func (m *MockMonitoringService) Sweep(ctx context.Context, today time.Time) (*monitoring.SweepResult, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.SweepResult), args.Error(1)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user *users.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenIssuer) Verify(token string) (*users.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

func newMockServices() *Services {
	return &Services{
		Equipment:  new(MockEquipmentService),
		Labels:     new(MockLabelService),
		Cardek:     new(MockCardekService),
		Loans:      new(MockInstrumentLoanService),
		NCRs:       new(MockNCRService),
		Users:      new(MockUserService),
		Uploads:    new(MockUploadService),
		Reports:    new(MockReportService),
		Monitoring: new(MockMonitoringService),
	}
}
