package app

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/samber/lo"
)

const pendingDisposition = "pending"

// reportService implements the ReportService interface
type reportService struct {
	ncrRepository  ncr.NCRRepository
	loanRepository instruments.InstrumentLoanRepository
	renderers      map[string]reports.Renderer
	logger         logger.Logger
}

// NewReportService creates a new instance of ReportService rendering through renderers
func NewReportService(ncrRepository ncr.NCRRepository, loanRepository instruments.InstrumentLoanRepository, logger logger.Logger, renderers ...reports.Renderer) (reports.ReportService, error) {
	byFormat := make(map[string]reports.Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &reportService{
		ncrRepository:  ncrRepository,
		loanRepository: loanRepository,
		renderers:      byFormat,
		logger:         logger,
	}, nil
}

// NCRReport loads every matching NCR. The SQL range is re-checked in memory on the calendar date.
func (s *reportService) NCRReport(ctx context.Context, filter *reports.NCRFilter) (*reports.NCRReport, error) {
	if err := filter.Validate(); err != nil {
		return nil, invalid(err)
	}
	period, err := filter.Period()
	if err != nil {
		return nil, invalid(err)
	}

	query := ncr.NewNCRQuery()
	query.Year = filter.Year
	query.Month = filter.Month
	query.Source = filter.Source
	query.SortBy = "date"
	query.SortOrder = "asc"

	list, err := s.ncrRepository.List(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := lo.Filter(list, func(n *ncr.NCR, _ int) bool {
		return period.Contains(n.Date) &&
			calibration.MatchExact(n.Source, filter.Source) &&
			calibration.MatchContains(n.Department, filter.Department)
	})

	return &reports.NCRReport{
		Period: period,
		Rows:   rows,
		ByDisposition: lo.CountValuesBy(rows, func(n *ncr.NCR) string {
			if n.Disposition == "" {
				return pendingDisposition
			}
			return n.Disposition
		}),
		BySource: lo.CountValuesBy(rows, func(n *ncr.NCR) string {
			return n.Source
		}),
	}, nil
}

// LoanReport loads every loan issued in the period
func (s *reportService) LoanReport(ctx context.Context, filter *reports.LoanFilter) (*reports.LoanReport, error) {
	if err := filter.Validate(); err != nil {
		return nil, invalid(err)
	}
	period, err := filter.Period()
	if err != nil {
		return nil, invalid(err)
	}

	query := instruments.NewLoanQuery()
	query.Year = filter.Year
	query.Month = filter.Month

	list, err := s.loanRepository.List(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := lo.Filter(list, func(l *instruments.InstrumentLoan, _ int) bool {
		return period.Contains(l.IssuedAt.In(calibration.Location())) && calibration.MatchContains(l.Department, filter.Department)
	})
	open := lo.CountBy(rows, func(l *instruments.InstrumentLoan) bool {
		return l.Status == instruments.LoanStatusIssued
	})

	return &reports.LoanReport{
		Period:   period,
		Rows:     rows,
		Open:     open,
		Returned: len(rows) - open,
	}, nil
}

func (s *reportService) RenderNCR(ctx context.Context, filter *reports.NCRFilter, format string) ([]byte, string, error) {
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, "", err
	}

	report, err := s.NCRReport(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	return s.render(renderer, ncrTable(report))
}

func (s *reportService) RenderLoans(ctx context.Context, filter *reports.LoanFilter, format string) ([]byte, string, error) {
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, "", err
	}

	report, err := s.LoanReport(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	return s.render(renderer, loanTable(report))
}

func (s *reportService) renderer(format string) (reports.Renderer, error) {
	r, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", reports.ErrUnsupportedFormat, format)
	}
	return r, nil
}

func (s *reportService) render(renderer reports.Renderer, table *reports.Table) ([]byte, string, error) {
	data, err := renderer.Render(table)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render %s report: %w", renderer.Format(), err)
	}

	s.logger.Info("Rendered report", "title", table.Title, "format", renderer.Format(), "rows", len(table.Rows))
	return data, renderer.ContentType(), nil
}

func ncrTable(report *reports.NCRReport) *reports.Table {
	table := &reports.Table{
		Title:    "Non-Conformance Report",
		Subtitle: "Period " + report.Period.String(),
		Headers: []string{
			"NCR No.", "Date", "Source", "Department", "Part No.", "Part Name",
			"Description", "Qty", "Disposition", "Status",
		},
	}

	for _, n := range report.Rows {
		table.Rows = append(table.Rows, []string{
			n.NCRNo,
			n.Date.Format(time.DateOnly),
			n.Source,
			n.Department,
			n.PartNo,
			n.PartName,
			n.Description,
			strconv.Itoa(n.Quantity),
			lo.Ternary(n.Disposition == "", pendingDisposition, n.Disposition),
			n.Status,
		})
	}

	table.Summary = append(table.Summary, fmt.Sprintf("Total: %d", len(report.Rows)))
	table.Summary = append(table.Summary, countLines("Disposition", report.ByDisposition)...)
	table.Summary = append(table.Summary, countLines("Source", report.BySource)...)
	return table
}

func loanTable(report *reports.LoanReport) *reports.Table {
	table := &reports.Table{
		Title:    "Instrument Issue Log",
		Subtitle: "Period " + report.Period.String(),
		Headers: []string{
			"JFT No.", "Borrower", "Department", "Purpose", "Issued", "Returned", "Condition", "Status",
		},
	}

	for _, l := range report.Rows {
		returned := "-"
		if l.ReturnedAt != nil {
			returned = l.ReturnedAt.Format(time.DateTime)
		}
		table.Rows = append(table.Rows, []string{
			l.JFTNo,
			l.Borrower,
			l.Department,
			l.Purpose,
			l.IssuedAt.Format(time.DateTime),
			returned,
			l.ReturnCondition,
			l.Status,
		})
	}

	table.Summary = []string{
		fmt.Sprintf("Total: %d", len(report.Rows)),
		fmt.Sprintf("Open: %d", report.Open),
		fmt.Sprintf("Returned: %d", report.Returned),
	}
	return table
}

func countLines(label string, counts map[string]int) []string {
	keys := lo.Keys(counts)
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s %s: %d", label, k, counts[k]))
	}
	return lines
}
