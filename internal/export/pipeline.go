package export

import (
	"context"
	"errors"
	"image"
	"math"
	"time"

	"github.com/kishankathi24/SpeedyBill/internal/config"
	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/observability/metrics"
	"github.com/kishankathi24/SpeedyBill/internal/render"
	"go.uber.org/zap"
)

// ErrNotMounted is returned when export runs before the canonical document
// has mounted. The export is a no-op; no partial file is produced.
var ErrNotMounted = errors.New("export: canonical document not mounted")

const defaultFilename = "invoice"

// Result is a finished export: the PDF byte stream and its delivery name.
type Result struct {
	PDF      []byte
	Filename string
}

// Pipeline converts the canonical document into a single-page PDF:
// isolate a snapshot, wait for fonts, rasterize, validate and fall back if
// the capture came out blank, assemble, deliver, clean up. Only one export
// is expected in flight at a time.
type Pipeline struct {
	canonical *Canonical
	session   domain.Session
	fonts     *FaceProvider
	primary   Rasterizer
	fallback  Rasterizer
	holder    *config.TunablesHolder
	metrics   *metrics.Metrics
	log       *zap.Logger
}

type PipelineParams struct {
	Canonical *Canonical
	Session   domain.Session
	Fonts     *FaceProvider
	Primary   Rasterizer
	Fallback  Rasterizer
	Holder    *config.TunablesHolder
	Metrics   *metrics.Metrics
	Log       *zap.Logger
}

func NewPipeline(p PipelineParams) *Pipeline {
	return &Pipeline{
		canonical: p.Canonical,
		session:   p.Session,
		fonts:     p.Fonts,
		primary:   p.Primary,
		fallback:  p.Fallback,
		holder:    p.Holder,
		metrics:   p.Metrics,
		log:       p.Log,
	}
}

// workspace is the isolated off-screen container a capture runs in. The
// snapshot inside is a deep copy of the canonical document with all display
// decoration stripped, so a live scaled on-screen copy can never corrupt
// the capture.
type workspace struct {
	doc      *render.Document
	released bool
}

func newWorkspace(src *render.Document) *workspace {
	snap := src.Clone()
	snap.Transform = 1
	snap.Margin = 0
	snap.Shadow = false
	return &workspace{doc: snap}
}

// release is the mandatory cleanup step; it runs on every exit path.
func (w *workspace) release() {
	w.doc = nil
	w.released = true
}

// Export runs the pipeline against the current canonical document.
func (p *Pipeline) Export(ctx context.Context) (*Result, error) {
	src := p.canonical.Document()
	if src == nil {
		return nil, ErrNotMounted
	}

	p.metrics.ExportAttempts.Inc()
	tun := p.holder.Get()

	ws := newWorkspace(src)
	defer ws.release()

	if err := p.fonts.Ready(ctx); err != nil {
		return nil, err
	}

	captureStart := time.Now()
	capture, err := p.capture(ctx, ws.doc, tun)
	p.metrics.CaptureDuration.Observe(time.Since(captureStart).Seconds())
	if err != nil {
		p.metrics.ExportFailures.Inc()
		return nil, err
	}

	pdf, err := assemblePDF(capture)
	if err != nil {
		p.metrics.ExportFailures.Inc()
		return nil, err
	}

	inv, _ := p.session.Current()
	name := inv.Meta.Number
	if name == "" {
		name = defaultFilename
	}

	p.log.Info("invoice exported",
		zap.String("filename", name+".pdf"),
		zap.Int("bytes", len(pdf)),
	)
	return &Result{PDF: pdf, Filename: name + ".pdf"}, nil
}

// capture tries the primary strategy and validates the result with the
// sampled-pixel heuristic; a blank capture or a primary error retries with
// the fallback strategy. Export must never silently deliver a blank
// document when content exists.
func (p *Pipeline) capture(ctx context.Context, doc *render.Document, tun config.Tunables) (image.Image, error) {
	scale := math.Max(tun.RasterScale, 2)

	img, err := p.primary.Rasterize(ctx, doc, scale)
	if err == nil && HasVisiblePixels(img, tun.SampleStride, tun.WhiteThreshold, tun.AlphaThreshold) {
		return img, nil
	}

	if err != nil {
		p.log.Warn("primary capture failed, retrying with fallback strategy", zap.Error(err))
	} else {
		p.log.Warn("primary capture came out blank, retrying with fallback strategy")
	}
	p.metrics.ExportFallbacks.Inc()

	return p.fallback.Rasterize(ctx, doc, scale)
}
