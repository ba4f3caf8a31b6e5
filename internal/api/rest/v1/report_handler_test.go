//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_NCR_JSON(t *testing.T) {
	reportService := new(MockReportService)
	handler := NewReportHandler(reportService)

	reportService.On("NCRReport", mock.Anything, &reports.NCRFilter{Year: 2024, Month: "03-05"}).Return(&reports.NCRReport{
		Period:        calibration.Period{Year: 2024, StartMonth: 3, EndMonth: 5},
		Rows:          []*ncr.NCR{{NCRNo: "NCR-1", Source: ncr.SourceInternal, Status: ncr.StatusOpen}},
		ByDisposition: map[string]int{"pending": 1},
		BySource:      map[string]int{ncr.SourceInternal: 1},
	}, nil)

	c, w := jsonContext(t, http.MethodGet, "/reports/ncr?year=2024&month=03-05", nil)
	handler.NCR(c)

	require.Equal(t, http.StatusOK, w.Code)
	var response NCRReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "2024-03..05", response.Period)
	assert.Equal(t, 1, response.Total)
	assert.Equal(t, 1, response.ByDisposition["pending"])
}

func TestReportHandler_NCR_PDFAttachment(t *testing.T) {
	reportService := new(MockReportService)
	handler := NewReportHandler(reportService)

	reportService.On("RenderNCR", mock.Anything, mock.Anything, reports.FormatPDF).
		Return([]byte("%PDF-1.4"), "application/pdf", nil)

	c, w := jsonContext(t, http.MethodGet, "/reports/ncr?year=2024&month=07&format=pdf", nil)
	handler.NCR(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ncr-report-2024-07.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestReportHandler_NCR_MissingYear(t *testing.T) {
	reportService := new(MockReportService)
	handler := NewReportHandler(reportService)

	c, w := jsonContext(t, http.MethodGet, "/reports/ncr?month=07", nil)
	handler.NCR(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_NCR_InvalidMonthRange(t *testing.T) {
	reportService := new(MockReportService)
	handler := NewReportHandler(reportService)

	c, w := jsonContext(t, http.MethodGet, "/reports/ncr?year=2024&month=09-02", nil)
	handler.NCR(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reportService.AssertNotCalled(t, "NCRReport", mock.Anything, mock.Anything)
}
