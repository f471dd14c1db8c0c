package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyFonts(t *testing.T) *FaceProvider {
	t.Helper()
	fonts := NewFaceProvider()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, fonts.Ready(ctx))
	return fonts
}

func renderedDoc(t *testing.T, logo string) *render.Document {
	t.Helper()
	inv := domain.DefaultInvoice(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "USD")
	inv.Business.Logo = logo
	return render.NewRenderer().Render(inv)
}

func pngDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRasterize_ProducesVisibleCapture(t *testing.T) {
	fonts := readyFonts(t)
	doc := renderedDoc(t, "")

	img, err := NewFallbackRasterizer(fonts).Rasterize(context.Background(), doc, 2)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, int(doc.Width*2+0.5), bounds.Dx())
	assert.Equal(t, int(doc.Height*2+0.5), bounds.Dy())
	assert.True(t, HasVisiblePixels(img, 4, 248, 0))
}

func TestRasterize_PrimaryEmbedsLogo(t *testing.T) {
	fonts := readyFonts(t)
	doc := renderedDoc(t, pngDataURI(t))

	img, err := NewPrimaryRasterizer(fonts).Rasterize(context.Background(), doc, 1)
	require.NoError(t, err)

	// The logo box sits at the page padding; a red sample proves the embed
	// was painted.
	found := false
	for y := 40; y < 96 && !found; y++ {
		for x := 40; x < 160 && !found; x++ {
			r, g, _, _ := img.At(x, y).RGBA()
			if uint8(r>>8) > 150 && uint8(g>>8) < 100 {
				found = true
			}
		}
	}
	assert.True(t, found, "embedded logo pixels not found")
}

func TestRasterize_PrimaryFailsOnBadLogo(t *testing.T) {
	fonts := readyFonts(t)
	doc := renderedDoc(t, "data:image/png;base64,!!!not-base64!!!")

	_, err := NewPrimaryRasterizer(fonts).Rasterize(context.Background(), doc, 1)
	assert.Error(t, err)
}

func TestRasterize_FallbackSkipsForeignContent(t *testing.T) {
	fonts := readyFonts(t)
	doc := renderedDoc(t, "data:image/png;base64,!!!not-base64!!!")

	// The fallback strategy never decodes embeds, so the bad logo cannot
	// sink the capture.
	img, err := NewFallbackRasterizer(fonts).Rasterize(context.Background(), doc, 1)
	require.NoError(t, err)
	assert.True(t, HasVisiblePixels(img, 4, 248, 0))
}

func TestRasterize_RejectsNonPositiveScale(t *testing.T) {
	fonts := readyFonts(t)
	doc := renderedDoc(t, "")

	_, err := NewFallbackRasterizer(fonts).Rasterize(context.Background(), doc, 0)
	assert.Error(t, err)
}

func TestRasterize_CancelledContext(t *testing.T) {
	fonts := readyFonts(t)
	doc := renderedDoc(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFallbackRasterizer(fonts).Rasterize(ctx, doc, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeDataURI(t *testing.T) {
	img, err := decodeDataURI(pngDataURI(t))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = decodeDataURI("https://example.com/logo.png")
	assert.Error(t, err)

	_, err = decodeDataURI("data:image/png;base64,AAAA")
	assert.Error(t, err)
}
