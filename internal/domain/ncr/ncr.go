package ncr

import (
	"context"
	"errors"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// NCR sources
const (
	SourceInternal = "internal"
	SourceSupplier = "supplier"
	SourceCustomer = "customer"
	SourceProcess  = "process"
)

// Dispositions
const (
	DispositionRepair         = "repair"
	DispositionRework         = "rework"
	DispositionScrap          = "scrap"
	DispositionUseAsIs        = "use_as_is"
	DispositionReturnToVendor = "return_to_vendor"
)

// NCR states
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// ErrAlreadyClosed is returned when closing a closed NCR
var ErrAlreadyClosed = errors.New("ncr is already closed")

// NCR is a non-conformance report
type NCR struct {
	ID               string    `validate:"required,uuid4"`
	NCRNo            string    `validate:"required,min=1,max=64"`
	Date             time.Time `validate:"required"`
	Source           string    `validate:"required,oneof=internal supplier customer process"`
	Department       string    `validate:"max=100"`
	PartNo           string    `validate:"max=100"`
	PartName         string    `validate:"max=255"`
	Description      string    `validate:"required,min=1,max=2000"`
	Quantity         int       `validate:"min=0"`
	Disposition      string    `validate:"omitempty,oneof=repair rework scrap use_as_is return_to_vendor"`
	RootCause        string    `validate:"max=2000"`
	CorrectiveAction string    `validate:"max=2000"`
	RaisedBy         string    `validate:"max=100"`
	Status           string    `validate:"required,oneof=open closed"`
	ClosedAt         *time.Time
	Deleted          bool
	DateTimeCreated  time.Time `validate:"required"`
	DateTimeUpdated  time.Time
}

// Validate for validating NCR struct
func (n *NCR) Validate() error {
	if err := validators.ValidateStruct(n); err != nil {
		return err
	}
	if n.Status == StatusClosed && n.ClosedAt == nil {
		return errors.New("validation failed: closed ncr needs a close time")
	}
	return nil
}

// Close marks the NCR closed at t. A disposition is required to close.
func (n *NCR) Close(disposition string, t time.Time) error {
	if n.Status == StatusClosed {
		return ErrAlreadyClosed
	}
	if disposition != "" {
		n.Disposition = disposition
	}
	if n.Disposition == "" {
		return errors.New("validation failed: disposition is required to close an ncr")
	}
	n.Status = StatusClosed
	n.ClosedAt = &t
	return n.Validate()
}

// NCRQuery filters non-conformance reports
type NCRQuery struct {
	NCRNo      string `validate:"omitempty,max=64"`
	Source     string `validate:"omitempty,oneof=internal supplier customer process"`
	Department string `validate:"omitempty,max=100"`
	Status     string `validate:"omitempty,oneof=open closed"`
	Year       int    `validate:"omitempty,min=1,max=9999"`
	Month      string `validate:"omitempty,monthrange"`

	Limit     int    `validate:"omitempty,min=0"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=ncr_no date source department status"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewNCRQuery creates a NCRQuery with default values
func NewNCRQuery() *NCRQuery {
	return &NCRQuery{}
}

// Validate for validating NCRQuery struct
func (q *NCRQuery) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return err
	}
	if q.Month != "" && q.Year == 0 {
		return errors.New("validation failed: month filter needs a year")
	}
	return nil
}

// NCRService manages non-conformance reports.
type NCRService interface {
	// Create opens a new NCR. A duplicate NCR No. is rejected.
	Create(ctx context.Context, ncr *NCR) (*NCR, error)
	List(ctx context.Context, query *NCRQuery) ([]*NCR, error)
	GetByID(ctx context.Context, ncrID string) (*NCR, error)
	Update(ctx context.Context, ncr *NCR) (*NCR, error)
	// Close closes an open NCR, optionally setting its final disposition.
	Close(ctx context.Context, ncrID string, disposition string) (*NCR, error)
	DeleteByID(ctx context.Context, ncrID string) error
}

// NCRRepository defines the interface for NCR persistence
type NCRRepository interface {
	Create(ctx context.Context, ncr *NCR) error
	List(ctx context.Context, query *NCRQuery) ([]*NCR, error)
	GetByID(ctx context.Context, ncrID string) (*NCR, error)
	GetByNumber(ctx context.Context, ncrNo string) (*NCR, error)
	UpdateByID(ctx context.Context, ncr *NCR) error
	DeleteByID(ctx context.Context, ncrID string) error
}
