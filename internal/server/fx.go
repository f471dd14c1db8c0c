package server

import "go.uber.org/fx"

// Module wires the HTTP surface: engine, route registration and the server
// lifecycle.
var Module = fx.Module("server",
	fx.Provide(
		NewEngine,
		NewServer,
	),
	fx.Invoke(
		func(s *Server) { s.RegisterRoutes() },
		RunHTTP,
	),
)
