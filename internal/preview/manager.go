package preview

import (
	"context"

	"github.com/kishankathi24/SpeedyBill/internal/config"
	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/render"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Surface names. The desktop pane and the mobile overlay have independent
// host dimensions, so each keeps its own scale state.
const (
	SurfaceDesktop = "desktop"
	SurfaceMobile  = "mobile"
)

// Manager owns the preview surfaces for the session.
type Manager struct {
	surfaces map[string]*Surface
}

func NewManager(session domain.Session, renderer *render.Renderer, holder *config.TunablesHolder, log *zap.Logger) *Manager {
	tunables := func() (padding, floor float64) {
		t := holder.Get()
		return t.PreviewPadding, t.MinScale
	}

	m := &Manager{surfaces: make(map[string]*Surface)}
	for _, name := range []string{SurfaceDesktop, SurfaceMobile} {
		m.surfaces[name] = newSurface(name, session, renderer, NewScaler(tunables), log)
	}
	return m
}

// Surface looks up a surface by name; ok is false for unknown names.
func (m *Manager) Surface(name string) (*Surface, bool) {
	s, ok := m.surfaces[name]
	return s, ok
}

func (m *Manager) activate() {
	for _, s := range m.surfaces {
		s.Activate()
	}
}

func (m *Manager) release() {
	for _, s := range m.surfaces {
		s.Release()
	}
}

func registerHooks(lc fx.Lifecycle, m *Manager) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			m.activate()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = ctx
			m.release()
			return nil
		},
	})
}

// Module wires the preview surfaces and ties their observation hooks to the
// application lifetime.
var Module = fx.Module("preview",
	fx.Provide(NewManager),
	fx.Invoke(registerHooks),
)
