package testutil

import (
	"mime/multipart"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/httputil"
	"github.com/stretchr/testify/require"
)

// PDFMagic is the minimal header accepted as a PDF upload
var PDFMagic = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")

// PNGMagic is a minimal PNG signature accepted as an image upload
var PNGMagic = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

// CreateFileHeader returns the parsed header of a single uploaded file
func CreateFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	form, err := httputil.CreateForm(content, "file", fileName)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = form.RemoveAll()
	})

	headers := form.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}
