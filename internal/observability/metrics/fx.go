package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module wires the prometheus registry and instruments.
var Module = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		New,
	),
)

func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}
