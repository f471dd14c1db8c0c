package config

import "go.uber.org/fx"

// Module wires process configuration and hot-reloadable tunables.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewTunablesHolder,
	),
)
