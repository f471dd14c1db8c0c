package export

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHeightMM_A4AspectStaysA4(t *testing.T) {
	// 794x1123 is the A4 aspect ratio at 96dpi; it maps to just over the
	// minimum page height.
	got := PageHeightMM(794, 1123)
	assert.InDelta(t, 1123.0/794.0*210.0, got, 1e-9)
	assert.GreaterOrEqual(t, got, 297.0)
}

func TestPageHeightMM_TallCaptureGrowsThePage(t *testing.T) {
	got := PageHeightMM(794, 2246)
	assert.InDelta(t, 2246.0/794.0*210.0, got, 1e-9)
	assert.Greater(t, got, 297.0)
}

func TestPageHeightMM_ShortCaptureClampsToA4(t *testing.T) {
	assert.Equal(t, 297.0, PageHeightMM(1000, 500))
}

func TestPageHeightMM_DegenerateDimensions(t *testing.T) {
	assert.Equal(t, 297.0, PageHeightMM(0, 100))
	assert.Equal(t, 297.0, PageHeightMM(100, 0))
	assert.Equal(t, 297.0, PageHeightMM(-1, -1))
}

func TestAssemblePDF_ProducesAValidDocument(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 80, 120))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 124, G: 58, B: 237, A: 255}), image.Point{}, draw.Src)

	out, err := assemblePDF(img)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
