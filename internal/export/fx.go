package export

import (
	"context"

	"github.com/kishankathi24/SpeedyBill/internal/config"
	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newProvidedPipeline(
	canonical *Canonical,
	session domain.Session,
	fonts *FaceProvider,
	holder *config.TunablesHolder,
	m *metrics.Metrics,
	log *zap.Logger,
) *Pipeline {
	return NewPipeline(PipelineParams{
		Canonical: canonical,
		Session:   session,
		Fonts:     fonts,
		Primary:   NewPrimaryRasterizer(fonts),
		Fallback:  NewFallbackRasterizer(fonts),
		Holder:    holder,
		Metrics:   m,
		Log:       log,
	})
}

func registerHooks(lc fx.Lifecycle, c *Canonical) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			c.Mount()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = ctx
			c.Unmount()
			return nil
		},
	})
}

// Module wires the canonical document, the capture strategies and the
// export pipeline.
var Module = fx.Module("export",
	fx.Provide(
		NewFaceProvider,
		NewCanonical,
		newProvidedPipeline,
	),
	fx.Invoke(registerHooks),
)
