package reporting

import (
	"fmt"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"

	"github.com/xuri/excelize/v2"
)

// ReportSheet is the name of the worksheet holding the report rows
const ReportSheet = "Report"

type xlsxRenderer struct{}

// NewXLSXRenderer creates a renderer writing one worksheet per table
func NewXLSXRenderer() reports.Renderer {
	return &xlsxRenderer{}
}

func (r *xlsxRenderer) Format() string {
	return reports.FormatXLSX
}

func (r *xlsxRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *xlsxRenderer) Render(table *reports.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ReportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: table.Title, Subject: table.Subtitle}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE4F0"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	row := 1
	if err := f.SetCellValue(ReportSheet, "A1", table.Title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(ReportSheet, "A1", "A1", boldStyle); err != nil {
		return nil, err
	}
	if table.Subtitle != "" {
		row++
		if err := f.SetCellValue(ReportSheet, cell(1, row), table.Subtitle); err != nil {
			return nil, err
		}
	}

	row += 2
	headerRow := row
	if err := f.SetSheetRow(ReportSheet, cell(1, row), &table.Headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol := len(table.Headers)
	if lastCol > 0 {
		if err := f.SetCellStyle(ReportSheet, cell(1, row), cell(lastCol, row), headerStyle); err != nil {
			return nil, err
		}
	}

	for _, values := range table.Rows {
		row++
		values := values
		if err := f.SetSheetRow(ReportSheet, cell(1, row), &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	if len(table.Summary) > 0 {
		row++
		for _, line := range table.Summary {
			row++
			if err := f.SetCellValue(ReportSheet, cell(1, row), line); err != nil {
				return nil, err
			}
		}
	}

	if lastCol > 0 {
		lastName, _ := excelize.ColumnNumberToName(lastCol)
		if err := f.SetColWidth(ReportSheet, "A", lastName, 18); err != nil {
			return nil, err
		}
		if err := f.AutoFilter(ReportSheet, cell(1, headerRow)+":"+cell(lastCol, headerRow+len(table.Rows)), nil); err != nil {
			return nil, fmt.Errorf("failed to set filter: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
