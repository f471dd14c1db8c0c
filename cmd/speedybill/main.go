package main

import (
	"github.com/kishankathi24/SpeedyBill/internal/clock"
	"github.com/kishankathi24/SpeedyBill/internal/config"
	"github.com/kishankathi24/SpeedyBill/internal/export"
	"github.com/kishankathi24/SpeedyBill/internal/invoice"
	"github.com/kishankathi24/SpeedyBill/internal/logger"
	"github.com/kishankathi24/SpeedyBill/internal/observability/metrics"
	"github.com/kishankathi24/SpeedyBill/internal/preview"
	"github.com/kishankathi24/SpeedyBill/internal/providers/pdf"
	"github.com/kishankathi24/SpeedyBill/internal/render"
	"github.com/kishankathi24/SpeedyBill/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		metrics.Module,
		fx.Provide(clock.NewSystem),

		// Editing session and document rendering
		invoice.Module,
		render.Module,
		preview.Module,

		// Export pipeline and the paginated print path
		export.Module,
		pdf.Module,

		server.Module,
	)
	app.Run()
}
