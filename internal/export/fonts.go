package export

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceProvider loads the capture typefaces in the background and exposes a
// readiness signal. Capturing before faces are ready produces wrong glyph
// metrics, so the pipeline always waits on Ready first.
type FaceProvider struct {
	ready chan struct{}
	err   error

	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size int // tenths of a pixel
	bold bool
}

func NewFaceProvider() *FaceProvider {
	p := &FaceProvider{
		ready: make(chan struct{}),
		faces: make(map[faceKey]font.Face),
	}
	go p.load()
	return p
}

func (p *FaceProvider) load() {
	defer close(p.ready)
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		p.err = fmt.Errorf("parse regular face: %w", err)
		return
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		p.err = fmt.Errorf("parse bold face: %w", err)
		return
	}
	p.regular = regular
	p.bold = bold
}

// Ready blocks until the faces are loaded or ctx is done.
func (p *FaceProvider) Ready(ctx context.Context) error {
	select {
	case <-p.ready:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Face returns a cached face at the given pixel size. Ready must have
// resolved without error first.
func (p *FaceProvider) Face(sizePx float64, bold bool) (font.Face, error) {
	select {
	case <-p.ready:
	default:
		return nil, fmt.Errorf("faces not ready")
	}
	if p.err != nil {
		return nil, p.err
	}

	key := faceKey{size: int(sizePx * 10), bold: bold}
	p.mu.Lock()
	defer p.mu.Unlock()
	if face, ok := p.faces[key]; ok {
		return face, nil
	}

	src := p.regular
	if bold {
		src = p.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	p.faces[key] = face
	return face, nil
}
