package instruments

import (
	"context"
	"errors"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// LoanQuery filters the instrument loan log
type LoanQuery struct {
	JFTNo      string `validate:"omitempty,max=64"`
	Borrower   string `validate:"omitempty,max=100"`
	Department string `validate:"omitempty,max=100"`
	Status     string `validate:"omitempty,oneof=issued returned"`
	// Year and Month select loans by issue date; Month needs Year
	Year  int    `validate:"omitempty,min=1,max=9999"`
	Month string `validate:"omitempty,monthrange"`

	Limit  int `validate:"omitempty,min=0"`
	Offset int `validate:"omitempty,min=0"`
}

// NewLoanQuery creates a LoanQuery with default values
func NewLoanQuery() *LoanQuery {
	return &LoanQuery{}
}

// Validate for validating LoanQuery struct
func (q *LoanQuery) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return err
	}
	if q.Month != "" && q.Year == 0 {
		return errors.New("validation failed: month filter needs a year")
	}
	return nil
}

// InstrumentLoanService handles issuing and returning instruments.
type InstrumentLoanService interface {
	// Issue loans out an instrument. It fails with ErrCalibrationBlocked when the
	// instrument's calibration is expired or near expiry, and with ErrAlreadyIssued
	// when an open loan exists.
	Issue(ctx context.Context, request *IssueRequest) (*InstrumentLoan, error)

	// Return closes an open loan.
	Return(ctx context.Context, loanID string, request *ReturnRequest) (*InstrumentLoan, error)

	// List retrieves loans considering a query filter when set.
	List(ctx context.Context, query *LoanQuery) ([]*InstrumentLoan, error)

	// GetByID retrieves one loan.
	GetByID(ctx context.Context, loanID string) (*InstrumentLoan, error)

	// DeleteByID soft deletes a loan.
	DeleteByID(ctx context.Context, loanID string) error
}

// InstrumentLoanRepository defines the interface for InstrumentLoan persistence
type InstrumentLoanRepository interface {
	Create(ctx context.Context, loan *InstrumentLoan) error
	List(ctx context.Context, query *LoanQuery) ([]*InstrumentLoan, error)
	GetByID(ctx context.Context, loanID string) (*InstrumentLoan, error)
	// FindOpenByEquipment returns the issued, non-deleted loan of an equipment or nil
	FindOpenByEquipment(ctx context.Context, equipmentID string) (*InstrumentLoan, error)
	UpdateByID(ctx context.Context, loan *InstrumentLoan) error
	DeleteByID(ctx context.Context, loanID string) error
}
