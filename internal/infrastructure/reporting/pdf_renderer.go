package reporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfRowHeight  = 6.0
	pdfCellMargin = 2.0
)

type pdfRenderer struct {
	now func() time.Time
}

// NewPDFRenderer creates a landscape A4 table renderer
func NewPDFRenderer() reports.Renderer {
	return &pdfRenderer{now: time.Now}
}

func (r *pdfRenderer) Format() string {
	return reports.FormatPDF
}

func (r *pdfRenderer) ContentType() string {
	return "application/pdf"
}

func (r *pdfRenderer) Render(table *reports.Table) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(table.Title, true)
	pdf.SetCreationDate(r.now())
	pdf.SetAutoPageBreak(true, 12)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	widths := columnWidths(pdf, table)
	header := func() {
		pdf.SetFont(pdfFont, "B", 9)
		pdf.SetFillColor(220, 228, 240)
		for i, h := range table.Headers {
			pdf.CellFormat(widths[i], pdfRowHeight+1, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 8)
	}

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 8, tr(table.Title), "", 1, "L", false, 0, "")
	if table.Subtitle != "" {
		pdf.SetFont(pdfFont, "", 10)
		pdf.CellFormat(0, 6, tr(table.Subtitle), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range table.Rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-bottom-12 {
			pdf.AddPage()
			header()
		}
		for i := range table.Headers {
			value := ""
			if i < len(row) {
				value = fit(pdf, tr(row[i]), widths[i])
			}
			pdf.CellFormat(widths[i], pdfRowHeight, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(table.Summary) > 0 {
		pdf.Ln(4)
		pdf.SetFont(pdfFont, "B", 9)
		for _, line := range table.Summary {
			pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths splits the printable width in proportion to the widest cell of each column
func columnWidths(pdf *fpdf.Fpdf, table *reports.Table) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	pdf.SetFont(pdfFont, "", 8)
	natural := make([]float64, len(table.Headers))
	total := 0.0
	for i, h := range table.Headers {
		w := pdf.GetStringWidth(h) + 2*pdfCellMargin
		for _, row := range table.Rows {
			if i < len(row) {
				if cw := pdf.GetStringWidth(row[i]) + 2*pdfCellMargin; cw > w {
					w = cw
				}
			}
		}
		// long free text columns must not starve the others
		if w > usable/3 {
			w = usable / 3
		}
		natural[i] = w
		total += w
	}

	widths := make([]float64, len(natural))
	for i, w := range natural {
		widths[i] = w * usable / total
	}
	return widths
}

// fit truncates s with ".." so it fits into a cell of width w
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	limit := w - 2*pdfCellMargin
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"..") > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ".."
}
