// Package render turns an invoice snapshot into a measured document: an
// absolutely positioned box model at the document's natural size, plus an
// HTML preview for on-screen surfaces. The box model is the canonical
// scale-1 representation consumed by the export rasterizer and by the
// preview scalers (for content measurement).
package render

import (
	"image/color"
	"regexp"
)

// Document geometry is in CSS pixels at 96dpi. A4 portrait.
const (
	PageWidth     = 794
	PageMinHeight = 1123
)

// BoxKind discriminates the drawable primitives.
type BoxKind int

const (
	BoxRect BoxKind = iota
	BoxText
	BoxImage
)

// Align positions text within its box.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Box is one positioned primitive. Text boxes hold a single pre-wrapped
// line; image boxes hold the raw data-URI source, decoded at raster time.
type Box struct {
	Kind BoxKind

	X, Y, W, H float64

	// Text fields.
	Text     string
	FontSize float64
	Bold     bool
	Align    Align
	Color    color.RGBA

	// Image fields. DataURI is foreign embedded content; only the
	// foreign-content rasterization strategy draws it.
	DataURI string
}

// Document is the measured render output. Width is fixed; Height grows with
// content (more items, wrapped notes). Decoration records the margin and
// shadow treatment of on-screen copies so an export snapshot can strip it.
type Document struct {
	Width, Height float64
	Background    color.RGBA
	Boxes         []Box

	Margin    float64
	Shadow    bool
	Transform float64 // display scale; 1 means unscaled
}

// Clone deep-copies the document.
func (d *Document) Clone() *Document {
	out := *d
	out.Boxes = make([]Box, len(d.Boxes))
	copy(out.Boxes, d.Boxes)
	return &out
}

// Size returns the natural (unscaled) dimensions.
func (d *Document) Size() (w, h float64) {
	return d.Width, d.Height
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const fallbackAccent = "#7C3AED"

// sanitizeColor rejects anything that is not a six-digit hex color.
func sanitizeColor(value string) string {
	if hexColorPattern.MatchString(value) {
		return value
	}
	return fallbackAccent
}

func parseHex(value string) color.RGBA {
	value = sanitizeColor(value)
	var r, g, b uint8
	for i, dst := range []*uint8{&r, &g, &b} {
		hi := hexNibble(value[1+i*2])
		lo := hexNibble(value[2+i*2])
		*dst = hi<<4 | lo
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
