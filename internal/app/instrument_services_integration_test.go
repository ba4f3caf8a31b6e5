//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentLoanService_IssueAndReturn(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.EquipmentService.Create(ctx, newEquipment("JFT-200", time.Now(), "1 Year"))
	require.NoError(t, err)

	loan, err := services.LoanService.Issue(ctx, &instruments.IssueRequest{
		JFTNo:    "JFT-200",
		Borrower: "Budi",
		Purpose:  "Incoming inspection",
	})
	require.NoError(t, err)
	assert.Equal(t, instruments.LoanStatusIssued, loan.Status)
	assert.Equal(t, "Quality", loan.Department)

	_, err = services.LoanService.Issue(ctx, &instruments.IssueRequest{JFTNo: "JFT-200", Borrower: "Sari"})
	assert.ErrorIs(t, err, instruments.ErrAlreadyIssued)

	returned, err := services.LoanService.Return(ctx, loan.ID, &instruments.ReturnRequest{ReturnCondition: "good"})
	require.NoError(t, err)
	assert.Equal(t, instruments.LoanStatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnedAt)

	_, err = services.LoanService.Return(ctx, loan.ID, &instruments.ReturnRequest{})
	assert.ErrorIs(t, err, instruments.ErrAlreadyReturned)

	// returned instruments can be issued again
	_, err = services.LoanService.Issue(ctx, &instruments.IssueRequest{JFTNo: "JFT-200", Borrower: "Sari"})
	assert.NoError(t, err)
}

func TestInstrumentLoanService_Issue_BlockedByCalibration(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	today := time.Now()

	_, err := services.EquipmentService.Create(ctx, newEquipment("JFT-201", today.AddDate(0, 0, -30), "1 Week"))
	require.NoError(t, err)
	_, err = services.EquipmentService.Create(ctx, newEquipment("JFT-202", today.AddDate(0, 0, -25), "4 Week"))
	require.NoError(t, err)
	_, err = services.EquipmentService.Create(ctx, newEquipment("JFT-203", today, "whenever"))
	require.NoError(t, err)

	_, err = services.LoanService.Issue(ctx, &instruments.IssueRequest{JFTNo: "JFT-201", Borrower: "Budi"})
	require.ErrorIs(t, err, instruments.ErrCalibrationBlocked)
	assert.Contains(t, err.Error(), "Expired")

	_, err = services.LoanService.Issue(ctx, &instruments.IssueRequest{JFTNo: "JFT-202", Borrower: "Budi"})
	require.ErrorIs(t, err, instruments.ErrCalibrationBlocked)
	assert.Contains(t, err.Error(), "Akan Expired")

	// unknown due dates do not block
	_, err = services.LoanService.Issue(ctx, &instruments.IssueRequest{JFTNo: "JFT-203", Borrower: "Budi"})
	assert.NoError(t, err)
}

func TestInstrumentLoanService_List_ByMonth(t *testing.T) {
	calibration.SetLocation(time.UTC)
	t.Cleanup(func() { calibration.SetLocation(nil) })

	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.EquipmentService.Create(ctx, newEquipment("JFT-204", time.Now(), "1 Year"))
	require.NoError(t, err)

	loan, err := services.LoanService.Issue(ctx, &instruments.IssueRequest{
		JFTNo:    "JFT-204",
		Borrower: "Budi",
		IssuedAt: time.Date(2024, 3, 31, 16, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	query := instruments.NewLoanQuery()
	query.Year = 2024
	query.Month = "03"
	list, err := services.LoanService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, loan.ID, list[0].ID)

	query.Month = "04"
	list, err = services.LoanService.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReportService_LoanReport_MonthInPlantTimeZone(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	calibration.SetLocation(wib)
	t.Cleanup(func() { calibration.SetLocation(nil) })

	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.EquipmentService.Create(ctx, newEquipment("JFT-205", time.Now(), "1 Year"))
	require.NoError(t, err)

	// 2024-02-29T23:00Z, already March on the plant floor
	loan, err := services.LoanService.Issue(ctx, &instruments.IssueRequest{
		JFTNo:    "JFT-205",
		Borrower: "Budi",
		IssuedAt: time.Date(2024, 3, 1, 6, 0, 0, 0, wib),
	})
	require.NoError(t, err)

	report, err := services.ReportService.LoanReport(ctx, &reports.LoanFilter{Year: 2024, Month: "03"})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, loan.ID, report.Rows[0].ID)
	assert.Equal(t, 1, report.Open)

	report, err = services.ReportService.LoanReport(ctx, &reports.LoanFilter{Year: 2024, Month: "02"})
	require.NoError(t, err)
	assert.Empty(t, report.Rows)

	query := instruments.NewLoanQuery()
	query.Year = 2024
	query.Month = "03"
	list, err := services.LoanService.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
