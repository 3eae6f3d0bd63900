package branding

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLogoEmptyPath(t *testing.T) {
	got, err := LoadLogo("", 64)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadLogoResizesPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 200; x++ {
			src.Set(x, y, color.RGBA{R: 124, G: 100, B: 244, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	got, err := LoadLogo(path, 64)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(got))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestLoadLogoMissingFile(t *testing.T) {
	_, err := LoadLogo(filepath.Join(t.TempDir(), "nao-existe.webp"), 64)
	assert.Error(t, err)
}
