package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Register the decoders logo data URIs may carry.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/kishankathi24/SpeedyBill/internal/render"
	xdraw "golang.org/x/image/draw"
)

// Rasterizer converts a snapshot document into a pixel image at the given
// density multiplier.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc *render.Document, scale float64) (image.Image, error)
}

// CanvasRasterizer draws the box model with gg. The foreign-content mode
// additionally decodes and paints embedded logo images; it is the richer
// capture but the one whose output must be validated, since a bad embed can
// yield a blank or errored capture. The non-foreign mode skips embeds and
// serves as the fallback strategy.
type CanvasRasterizer struct {
	fonts          *FaceProvider
	foreignContent bool
}

func NewPrimaryRasterizer(fonts *FaceProvider) *CanvasRasterizer {
	return &CanvasRasterizer{fonts: fonts, foreignContent: true}
}

func NewFallbackRasterizer(fonts *FaceProvider) *CanvasRasterizer {
	return &CanvasRasterizer{fonts: fonts, foreignContent: false}
}

func (r *CanvasRasterizer) Rasterize(ctx context.Context, doc *render.Document, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("raster scale must be positive, got %v", scale)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w := int(doc.Width*scale + 0.5)
	h := int(doc.Height*scale + 0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("document has no measurable area (%dx%d)", w, h)
	}

	dc := gg.NewContext(w, h)

	// Opaque background; transparent captures must not leak through.
	dc.SetColor(doc.Background)
	dc.Clear()

	for _, box := range doc.Boxes {
		switch box.Kind {
		case render.BoxRect:
			dc.SetColor(box.Color)
			dc.DrawRectangle(box.X*scale, box.Y*scale, box.W*scale, box.H*scale)
			dc.Fill()

		case render.BoxText:
			if err := r.drawText(dc, box, scale); err != nil {
				return nil, err
			}

		case render.BoxImage:
			if !r.foreignContent {
				continue
			}
			if err := drawEmbedded(dc, box, scale); err != nil {
				return nil, err
			}
		}
	}

	return dc.Image(), nil
}

func (r *CanvasRasterizer) drawText(dc *gg.Context, box render.Box, scale float64) error {
	face, err := r.fonts.Face(box.FontSize*scale, box.Bold)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(box.Color)

	width, _ := dc.MeasureString(box.Text)
	x := box.X * scale
	switch box.Align {
	case render.AlignRight:
		x = (box.X+box.W)*scale - width
	case render.AlignCenter:
		x = (box.X+box.W/2)*scale - width/2
	}
	baseline := (box.Y + box.FontSize) * scale
	dc.DrawString(box.Text, x, baseline)
	return nil
}

// drawEmbedded decodes a data-URI image and paints it scaled into its box.
func drawEmbedded(dc *gg.Context, box render.Box, scale float64) error {
	img, err := decodeDataURI(box.DataURI)
	if err != nil {
		return err
	}

	dstW := int(box.W*scale + 0.5)
	dstH := int(box.H*scale + 0.5)
	if dstW <= 0 || dstH <= 0 {
		return nil
	}

	// Fit within the box preserving the source aspect ratio.
	srcB := img.Bounds()
	ar := float64(srcB.Dx()) / float64(srcB.Dy())
	fitW, fitH := dstW, int(float64(dstW)/ar+0.5)
	if fitH > dstH {
		fitH = dstH
		fitW = int(float64(dstH)*ar + 0.5)
	}
	if fitW <= 0 || fitH <= 0 {
		return nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, fitW, fitH))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, srcB, xdraw.Over, nil)
	dc.DrawImage(scaled, int(box.X*scale+0.5), int(box.Y*scale+0.5))
	return nil
}

func decodeDataURI(uri string) (image.Image, error) {
	const marker = ";base64,"
	idx := strings.Index(uri, marker)
	if !strings.HasPrefix(uri, "data:image/") || idx < 0 {
		return nil, fmt.Errorf("unsupported logo source")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len(marker):])
	if err != nil {
		return nil, fmt.Errorf("decode logo payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode logo image: %w", err)
	}
	return img, nil
}
