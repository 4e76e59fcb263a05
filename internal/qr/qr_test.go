package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	url := PublicURL("https://safeqr.example.com", "0123456789abcdef0123456789abcdef")
	assert.Equal(t, "https://safeqr.example.com/p/0123456789abcdef0123456789abcdef", url)
}

func TestGeneratePNG(t *testing.T) {
	data, err := GeneratePNG("https://safeqr.example.com/p/0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output should be valid PNG")
	assert.Equal(t, ImageSize, img.Bounds().Dx())
	assert.Equal(t, ImageSize, img.Bounds().Dy())
}
