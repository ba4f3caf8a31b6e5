package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ReportHandler renders NCR and instrument loan reports
type ReportHandler interface {
	NCR(ctx *gin.Context)
	Instruments(ctx *gin.Context)
}

type reportHandler struct {
	reportService reports.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService reports.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

// NCR renders the NCR report of a year and optional month range
// @Summary NCR report
// @Tags Reports
// @Produce json,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query int true "Year"
// @Param month query string false "Month (07) or month range (03-05)"
// @Param source query string false "Source"
// @Param department query string false "Department substring"
// @Param format query string false "json, pdf or xlsx"
// @Success 200 {object} NCRReportResponse
// @Failure 400 {object} ErrorResponse
// @Router /reports/ncr [get]
func (handler *reportHandler) NCR(ctx *gin.Context) {
	filter := &reports.NCRFilter{
		Year:       strutil.ConvertToInt(ctx.Query("year")),
		Month:      ctx.Query("month"),
		Source:     ctx.Query("source"),
		Department: ctx.Query("department"),
	}
	if err := filter.Validate(); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	format := ctx.DefaultQuery("format", reports.FormatJSON)
	if format != reports.FormatJSON {
		data, contentType, err := handler.reportService.RenderNCR(ctx, filter, format)
		if err != nil {
			respondError(ctx, err)
			return
		}
		sendAttachment(ctx, reportFileName("ncr-report", filter.Year, filter.Month, format), contentType, data)
		return
	}

	report, err := handler.reportService.NCRReport(ctx, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := NCRReportResponse{
		Period:        report.Period.String(),
		Total:         len(report.Rows),
		ByDisposition: report.ByDisposition,
		BySource:      report.BySource,
		Rows:          []NCRResponse{},
	}
	for _, n := range report.Rows {
		response.Rows = append(response.Rows, NewNCRResponse(n))
	}
	ctx.JSON(http.StatusOK, response)
}

// Instruments renders the issue/return log of a year and optional month range
func (handler *reportHandler) Instruments(ctx *gin.Context) {
	filter := &reports.LoanFilter{
		Year:       strutil.ConvertToInt(ctx.Query("year")),
		Month:      ctx.Query("month"),
		Department: ctx.Query("department"),
	}
	if err := filter.Validate(); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	format := ctx.DefaultQuery("format", reports.FormatJSON)
	if format != reports.FormatJSON {
		data, contentType, err := handler.reportService.RenderLoans(ctx, filter, format)
		if err != nil {
			respondError(ctx, err)
			return
		}
		sendAttachment(ctx, reportFileName("instrument-report", filter.Year, filter.Month, format), contentType, data)
		return
	}

	report, err := handler.reportService.LoanReport(ctx, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := LoanReportResponse{
		Period:   report.Period.String(),
		Total:    len(report.Rows),
		Open:     report.Open,
		Returned: report.Returned,
		Rows:     []InstrumentLoanResponse{},
	}
	for _, l := range report.Rows {
		response.Rows = append(response.Rows, NewInstrumentLoanResponse(l))
	}
	ctx.JSON(http.StatusOK, response)
}

func reportFileName(prefix string, year int, month, format string) string {
	name := fmt.Sprintf("%s-%04d", prefix, year)
	if month != "" {
		name += "-" + strings.ReplaceAll(month, " ", "")
	}
	return name + "." + format
}

func sendAttachment(ctx *gin.Context, fileName, contentType string, data []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, contentType, data)
}
