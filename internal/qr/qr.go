package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ImageSize is the fixed pixel size of generated QR PNGs
const ImageSize = 512

// PublicURL builds the fully-qualified public profile URL encoded in the QR
func PublicURL(siteURL, publicID string) string {
	return fmt.Sprintf("%s/p/%s", siteURL, publicID)
}

// GeneratePNG renders url as a QR-coded PNG with medium error correction
func GeneratePNG(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, ImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR image: %w", err)
	}
	return png, nil
}
