package pdf

import "go.uber.org/fx"

// Module wires the print facility.
var Module = fx.Module("providers.pdf",
	fx.Provide(NewPrinter),
)
