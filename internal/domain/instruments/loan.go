package instruments

import (
	"errors"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// Loan states
const (
	LoanStatusIssued   = "issued"
	LoanStatusReturned = "returned"
)

var (
	// ErrCalibrationBlocked is returned when the instrument's calibration is expired or near expiry
	ErrCalibrationBlocked = errors.New("instrument calibration is expired or about to expire")
	// ErrAlreadyIssued is returned when the instrument has an open loan
	ErrAlreadyIssued = errors.New("instrument is already issued")
	// ErrAlreadyReturned is returned when returning a closed loan
	ErrAlreadyReturned = errors.New("instrument loan is already returned")
)

// InstrumentLoan is one issue/return cycle of an instrument
type InstrumentLoan struct {
	ID              string    `validate:"required,uuid4"`
	EquipmentID     string    `validate:"required,uuid4"`
	JFTNo           string    `validate:"required,min=1,max=64"`
	Borrower        string    `validate:"required,min=1,max=100"`
	Department      string    `validate:"max=100"`
	Purpose         string    `validate:"max=255"`
	IssuedAt        time.Time `validate:"required"`
	IssuedImagePath *string   `validate:"omitempty,min=1,max=512"`
	ReturnedAt      *time.Time
	ReturnImagePath *string `validate:"omitempty,min=1,max=512"`
	ReturnCondition string  `validate:"max=255"`
	Status          string  `validate:"required,oneof=issued returned"`
	Deleted         bool
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating InstrumentLoan struct
func (l *InstrumentLoan) Validate() error {
	if err := validators.ValidateStruct(l); err != nil {
		return err
	}
	if l.Status == LoanStatusReturned && l.ReturnedAt == nil {
		return errors.New("validation failed: returned loan needs a return time")
	}
	if l.ReturnedAt != nil && l.ReturnedAt.Before(l.IssuedAt) {
		return errors.New("validation failed: return time before issue time")
	}
	return nil
}

// IssueRequest asks to loan out an instrument identified by JFT No.
// A zero IssuedAt means now.
type IssueRequest struct {
	JFTNo           string    `validate:"required,min=1,max=64"`
	Borrower        string    `validate:"required,min=1,max=100"`
	Department      string    `validate:"max=100"`
	Purpose         string    `validate:"max=255"`
	IssuedAt        time.Time `validate:"-"`
	IssuedImagePath *string   `validate:"omitempty,min=1,max=512"`
}

// Validate for validating IssueRequest struct
func (r *IssueRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ReturnRequest closes an open loan. A zero ReturnedAt means now.
type ReturnRequest struct {
	ReturnedAt      time.Time `validate:"-"`
	ReturnImagePath *string   `validate:"omitempty,min=1,max=512"`
	ReturnCondition string    `validate:"max=255"`
}

// Validate for validating ReturnRequest struct
func (r *ReturnRequest) Validate() error {
	return validators.ValidateStruct(r)
}
