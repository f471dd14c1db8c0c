package preview

import (
	"sync"

	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/render"
	"go.uber.org/zap"
)

// Surface is one live preview context (the desktop pane or the mobile
// overlay). It owns a scaler and the observation hooks feeding it: invoice
// mutations re-measure the content, viewport reports re-measure the host.
// Hooks are acquired on Activate and released unconditionally on Release.
type Surface struct {
	Name string

	scaler   *Scaler
	session  domain.Session
	renderer *render.Renderer
	log      *zap.Logger

	releaseOnce sync.Once
	cancelWatch func()
	done        chan struct{}
}

func newSurface(name string, session domain.Session, renderer *render.Renderer, scaler *Scaler, log *zap.Logger) *Surface {
	return &Surface{
		Name:     name,
		scaler:   scaler,
		session:  session,
		renderer: renderer,
		log:      log,
	}
}

// Activate acquires the content observation hook and takes the initial
// measurement. It must be paired with Release.
func (s *Surface) Activate() {
	revisions, cancel := s.session.Watch()
	s.cancelWatch = cancel
	s.done = make(chan struct{})

	s.measureContent()

	go func() {
		defer close(s.done)
		for range revisions {
			s.measureContent()
		}
	}()
}

// SetViewport records a client-reported host size.
func (s *Surface) SetViewport(sz Size) {
	s.scaler.SetHost(sz)
}

// Scale returns the surface's current fit scale.
func (s *Surface) Scale() float64 {
	return s.scaler.Scale()
}

// Release drops the observation hooks. It is idempotent and safe to call on
// error paths; the surface must not be reused afterwards.
func (s *Surface) Release() {
	s.releaseOnce.Do(func() {
		if s.cancelWatch != nil {
			s.cancelWatch()
			<-s.done
		}
		s.log.Debug("preview surface released", zap.String("surface", s.Name))
	})
}

func (s *Surface) measureContent() {
	inv, _ := s.session.Current()
	doc := s.renderer.Render(inv)
	w, h := doc.Size()
	s.scaler.SetContent(Size{W: w, H: h})
}
