package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimetres. The page is never shorter than A4 but grows
// to whatever height the capture's aspect ratio demands; the document is not
// paginated.
const (
	pageWidthMM     = 210
	pageMinHeightMM = 297
)

// PageHeightMM computes the single-page height for a capture of the given
// pixel dimensions.
func PageHeightMM(pxWidth, pxHeight int) float64 {
	if pxWidth <= 0 || pxHeight <= 0 {
		return pageMinHeightMM
	}
	aspect := float64(pxHeight) / float64(pxWidth)
	return math.Max(pageMinHeightMM, aspect*pageWidthMM)
}

// assemblePDF places the capture at the page origin, exactly filling one
// page sized to the capture's aspect ratio.
func assemblePDF(capture image.Image) ([]byte, error) {
	bounds := capture.Bounds()
	pageH := PageHeightMM(bounds.Dx(), bounds.Dy())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidthMM, Ht: pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	pdf.AddPage()

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, capture); err != nil {
		return nil, fmt.Errorf("encode capture: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture", opts, &encoded)
	pdf.ImageOptions("capture", 0, 0, pageWidthMM, pageH, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return out.Bytes(), nil
}
