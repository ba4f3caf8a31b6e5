//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"

	"github.com/stretchr/testify/mock"
)

// MockEquipmentRepository is a mock implementation of EquipmentRepository
type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) List(ctx context.Context, query *equipment.EquipmentQuery) ([]*equipment.Equipment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, equipmentID string) (*equipment.Equipment, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetByJFTNo(ctx context.Context, jftNo string) (*equipment.Equipment, error) {
	args := m.Called(ctx, jftNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) UpdateByID(ctx context.Context, e *equipment.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) DeleteByID(ctx context.Context, equipmentID string) error {
	args := m.Called(ctx, equipmentID)
	return args.Error(0)
}

// MockInstrumentLoanRepository is a mock implementation of InstrumentLoanRepository
type MockInstrumentLoanRepository struct {
	mock.Mock
}

func (m *MockInstrumentLoanRepository) Create(ctx context.Context, loan *instruments.InstrumentLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockInstrumentLoanRepository) List(ctx context.Context, query *instruments.LoanQuery) ([]*instruments.InstrumentLoan, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*instruments.InstrumentLoan), args.Error(1)
}

func (m *MockInstrumentLoanRepository) GetByID(ctx context.Context, loanID string) (*instruments.InstrumentLoan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instruments.InstrumentLoan), args.Error(1)
}

func (m *MockInstrumentLoanRepository) FindOpenByEquipment(ctx context.Context, equipmentID string) (*instruments.InstrumentLoan, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instruments.InstrumentLoan), args.Error(1)
}

func (m *MockInstrumentLoanRepository) UpdateByID(ctx context.Context, loan *instruments.InstrumentLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockInstrumentLoanRepository) DeleteByID(ctx context.Context, loanID string) error {
	args := m.Called(ctx, loanID)
	return args.Error(0)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, alert *monitoring.CalibrationAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockNotifier) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockFileConnector is a mock implementation of FileConnector
type MockFileConnector struct {
	mock.Mock
}

func (m *MockFileConnector) Save(ctx context.Context, category files.Category, ext string, data []byte) (string, error) {
	args := m.Called(ctx, category, ext, data)
	return args.String(0), args.Error(1)
}

func (m *MockFileConnector) Download(ctx context.Context, filePath string) ([]byte, error) {
	args := m.Called(ctx, filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileConnector) Delete(ctx context.Context, filePath string) error {
	args := m.Called(ctx, filePath)
	return args.Error(0)
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
