package app

import (
	"context"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/google/uuid"
)

// instrumentLoanService implements the InstrumentLoanService interface
type instrumentLoanService struct {
	loanRepository      instruments.InstrumentLoanRepository
	equipmentRepository equipment.EquipmentRepository
	logger              logger.Logger
	now                 func() time.Time
}

// NewInstrumentLoanService creates a new instance of InstrumentLoanService
func NewInstrumentLoanService(loanRepository instruments.InstrumentLoanRepository, equipmentRepository equipment.EquipmentRepository, logger logger.Logger) (instruments.InstrumentLoanService, error) {
	return &instrumentLoanService{
		loanRepository:      loanRepository,
		equipmentRepository: equipmentRepository,
		logger:              logger,
		now:                 calibration.Now,
	}, nil
}

// Issue loans out an instrument whose calibration is neither expired nor near expiry
func (s *instrumentLoanService) Issue(ctx context.Context, request *instruments.IssueRequest) (*instruments.InstrumentLoan, error) {
	if err := request.Validate(); err != nil {
		return nil, invalid(err)
	}

	e, err := s.equipmentRepository.GetByJFTNo(ctx, request.JFTNo)
	if err != nil {
		return nil, err
	}

	now := s.now()
	status := e.Status(now)
	if status.BlocksIssue() {
		s.logger.Warn("Issue refused", "jftNo", e.JFTNo, "status", status)
		return nil, fmt.Errorf("%w: %s is %s", instruments.ErrCalibrationBlocked, e.JFTNo, status.Label())
	}

	open, err := s.loanRepository.FindOpenByEquipment(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, fmt.Errorf("%w: %s is with %s", instruments.ErrAlreadyIssued, e.JFTNo, open.Borrower)
	}

	issuedAt := request.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = now
	}
	department := request.Department
	if department == "" {
		department = e.Department
	}

	loan := &instruments.InstrumentLoan{
		ID:              uuid.NewString(),
		EquipmentID:     e.ID,
		JFTNo:           e.JFTNo,
		Borrower:        request.Borrower,
		Department:      department,
		Purpose:         request.Purpose,
		IssuedAt:        issuedAt,
		IssuedImagePath: request.IssuedImagePath,
		Status:          instruments.LoanStatusIssued,
		DateTimeCreated: now,
	}
	if err := loan.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.loanRepository.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to issue instrument: %w", err)
	}
	return loan, nil
}

// Return closes an open loan
func (s *instrumentLoanService) Return(ctx context.Context, loanID string, request *instruments.ReturnRequest) (*instruments.InstrumentLoan, error) {
	if err := request.Validate(); err != nil {
		return nil, invalid(err)
	}

	loan, err := s.loanRepository.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status == instruments.LoanStatusReturned {
		return nil, fmt.Errorf("%w: %s", instruments.ErrAlreadyReturned, loan.JFTNo)
	}

	returnedAt := request.ReturnedAt
	if returnedAt.IsZero() {
		returnedAt = s.now()
	}
	loan.ReturnedAt = &returnedAt
	loan.ReturnImagePath = request.ReturnImagePath
	loan.ReturnCondition = request.ReturnCondition
	loan.Status = instruments.LoanStatusReturned

	if err := loan.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.loanRepository.UpdateByID(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to return instrument: %w", err)
	}
	return loan, nil
}

func (s *instrumentLoanService) List(ctx context.Context, query *instruments.LoanQuery) ([]*instruments.InstrumentLoan, error) {
	if err := query.Validate(); err != nil {
		return nil, invalid(err)
	}
	return s.loanRepository.List(ctx, query)
}

func (s *instrumentLoanService) GetByID(ctx context.Context, loanID string) (*instruments.InstrumentLoan, error) {
	return s.loanRepository.GetByID(ctx, loanID)
}

func (s *instrumentLoanService) DeleteByID(ctx context.Context, loanID string) error {
	return s.loanRepository.DeleteByID(ctx, loanID)
}
