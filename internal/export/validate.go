package export

import "image"

// HasVisiblePixels inspects a coarse sample of the capture (every stride-th
// pixel) for any pixel that is neither transparent nor near-white. The
// primary capture strategy is known to silently emit blank output on some
// inputs; a false result here triggers the fallback strategy.
func HasVisiblePixels(img image.Image, stride int, whiteThreshold, alphaThreshold uint8) bool {
	if img == nil {
		return false
	}
	if stride < 1 {
		stride = 1
	}

	bounds := img.Bounds()
	n := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if n%stride != 0 {
				n++
				continue
			}
			n++

			r, g, b, a := img.At(x, y).RGBA()
			r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
			if a8 <= alphaThreshold {
				continue
			}
			if r8 > whiteThreshold && g8 > whiteThreshold && b8 > whiteThreshold {
				continue
			}
			return true
		}
	}
	return false
}
