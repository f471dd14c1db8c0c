package export

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filled(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestHasVisiblePixels_AllWhiteIsBlank(t *testing.T) {
	img := filled(64, 64, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	assert.False(t, HasVisiblePixels(img, 4, 248, 0))
}

func TestHasVisiblePixels_NearWhiteIsBlank(t *testing.T) {
	img := filled(64, 64, color.RGBA{R: 250, G: 252, B: 249, A: 255})
	assert.False(t, HasVisiblePixels(img, 4, 248, 0))
}

func TestHasVisiblePixels_TransparentIsBlank(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	assert.False(t, HasVisiblePixels(img, 4, 248, 0))
}

func TestHasVisiblePixels_SingleInkPixelCounts(t *testing.T) {
	img := filled(64, 64, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	// Land the ink on a sampled offset: with stride 4 that is every 4th
	// pixel in scan order, starting at the first.
	img.SetRGBA(0, 0, color.RGBA{R: 26, G: 31, B: 54, A: 255})
	assert.True(t, HasVisiblePixels(img, 4, 248, 0))
}

func TestHasVisiblePixels_SamplingCanMissInk(t *testing.T) {
	img := filled(64, 64, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	// Ink only on unsampled offsets stays invisible to the heuristic; the
	// check trades exactness for speed.
	img.SetRGBA(1, 0, color.RGBA{A: 255})
	assert.False(t, HasVisiblePixels(img, 4, 248, 0))
}

func TestHasVisiblePixels_DegenerateInput(t *testing.T) {
	assert.False(t, HasVisiblePixels(nil, 4, 248, 0))

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	assert.False(t, HasVisiblePixels(empty, 4, 248, 0))

	// A non-positive stride falls back to checking every pixel.
	img := filled(8, 8, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(3, 0, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	assert.True(t, HasVisiblePixels(img, 0, 248, 0))
}
