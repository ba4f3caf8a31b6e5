package reporting

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Label sizes in pixels
const (
	DefaultLabelSize = 256
	MinLabelSize     = 64
	MaxLabelSize     = 1024
)

// QRCodePNG encodes content as a PNG QR code of size x size pixels
func QRCodePNG(content string, size int) ([]byte, error) {
	if size == 0 {
		size = DefaultLabelSize
	}
	if size < MinLabelSize || size > MaxLabelSize {
		return nil, fmt.Errorf("label size must be between %d and %d", MinLabelSize, MaxLabelSize)
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
