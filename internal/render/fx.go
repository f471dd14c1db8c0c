package render

import "go.uber.org/fx"

// Module wires the document and preview renderers.
var Module = fx.Module("render",
	fx.Provide(
		NewRenderer,
		NewHTMLRenderer,
	),
)
