package reports

import (
	"context"
	"errors"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// Output formats
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ErrUnsupportedFormat is returned for formats no renderer handles
var ErrUnsupportedFormat = errors.New("unsupported report format")

// NCRFilter selects NCRs for a report. An empty Month means the whole year.
type NCRFilter struct {
	Year       int    `validate:"required,min=1,max=9999"`
	Month      string `validate:"omitempty,monthrange"`
	Source     string `validate:"omitempty,oneof=internal supplier customer process"`
	Department string `validate:"omitempty,max=100"`
}

// Validate for validating NCRFilter struct
func (f *NCRFilter) Validate() error {
	return validators.ValidateStruct(f)
}

// Period returns the parsed month range of the filter
func (f *NCRFilter) Period() (calibration.Period, error) {
	return calibration.ParsePeriod(f.Year, f.Month)
}

// LoanFilter selects instrument loans for a report by issue date
type LoanFilter struct {
	Year       int    `validate:"required,min=1,max=9999"`
	Month      string `validate:"omitempty,monthrange"`
	Department string `validate:"omitempty,max=100"`
}

// Validate for validating LoanFilter struct
func (f *LoanFilter) Validate() error {
	return validators.ValidateStruct(f)
}

// Period returns the parsed month range of the filter
func (f *LoanFilter) Period() (calibration.Period, error) {
	return calibration.ParsePeriod(f.Year, f.Month)
}

// NCRReport is the filtered NCR list with per disposition and per source counts
type NCRReport struct {
	Period        calibration.Period
	Rows          []*ncr.NCR
	ByDisposition map[string]int
	BySource      map[string]int
}

// LoanReport is the filtered loan list with open/returned counts
type LoanReport struct {
	Period   calibration.Period
	Rows     []*instruments.InstrumentLoan
	Open     int
	Returned int
}

// Table is a format independent tabular rendering input
type Table struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]string
	// Summary lines are printed below the rows
	Summary []string
}

// Renderer writes a Table in one output format
type Renderer interface {
	Format() string
	ContentType() string
	Render(table *Table) ([]byte, error)
}

// ReportService builds filtered reports and renders them.
type ReportService interface {
	NCRReport(ctx context.Context, filter *NCRFilter) (*NCRReport, error)
	LoanReport(ctx context.Context, filter *LoanFilter) (*LoanReport, error)
	// RenderNCR renders the NCR report as pdf or xlsx and returns the bytes with their content type.
	RenderNCR(ctx context.Context, filter *NCRFilter, format string) ([]byte, string, error)
	// RenderLoans renders the loan report as pdf or xlsx and returns the bytes with their content type.
	RenderLoans(ctx context.Context, filter *LoanFilter, format string) ([]byte, string, error)
}
