//go:build unit
// +build unit

package reporting

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testTable() *reports.Table {
	return &reports.Table{
		Title:    "NCR Report",
		Subtitle: "Period 2024-11..12",
		Headers:  []string{"NCR No.", "Date", "Source", "Description"},
		Rows: [][]string{
			{"NCR-1", "2024-11-01", "internal", "Bore diameter out of tolerance"},
			{"NCR-2", "2024-12-31", "supplier", "Kerusakan permukaan – goresan panjang pada sisi kanan part yang melebihi batas toleransi visual"},
		},
		Summary: []string{"Total: 2"},
	}
}

func TestPDFRenderer_Render(t *testing.T) {
	r := NewPDFRenderer()
	assert.Equal(t, reports.FormatPDF, r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())

	data, err := r.Render(testTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFRenderer_Render_ManyRows(t *testing.T) {
	table := testTable()
	for i := 0; i < 120; i++ {
		table.Rows = append(table.Rows, []string{"NCR-X", "2024-11-02", "process", "short"})
	}

	data, err := NewPDFRenderer().Render(table)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestXLSXRenderer_Render(t *testing.T) {
	r := NewXLSXRenderer()
	assert.Equal(t, reports.FormatXLSX, r.Format())

	table := testTable()
	data, err := r.Render(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ReportSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 6)

	assert.Equal(t, "NCR Report", rows[0][0])
	assert.Equal(t, "Period 2024-11..12", rows[1][0])
	if diff := cmp.Diff(table.Headers, rows[3]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(table.Rows[0], rows[4]); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Total: 2", rows[len(rows)-1][0])
}

func TestQRCodePNG(t *testing.T) {
	data, err := QRCodePNG("JFT-0001", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultLabelSize, img.Bounds().Dx())

	_, err = QRCodePNG("JFT-0001", 10)
	assert.Error(t, err)
	_, err = QRCodePNG("JFT-0001", 4096)
	assert.Error(t, err)
}
