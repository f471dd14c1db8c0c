// Package server exposes the editing session, preview surfaces and export
// pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kishankathi24/SpeedyBill/internal/config"
	"github.com/kishankathi24/SpeedyBill/internal/export"
	invoicedomain "github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	obsmetrics "github.com/kishankathi24/SpeedyBill/internal/observability/metrics"
	"github.com/kishankathi24/SpeedyBill/internal/preview"
	"github.com/kishankathi24/SpeedyBill/internal/providers/pdf"
	"github.com/kishankathi24/SpeedyBill/internal/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	log      *zap.Logger
	session  invoicedomain.Session
	previews *preview.Manager
	html     *render.HTMLRenderer
	pipeline *export.Pipeline
	printer  pdf.Printer
	metrics  *obsmetrics.Metrics
}

type Params struct {
	fx.In

	Engine   *gin.Engine
	Cfg      config.Config
	Log      *zap.Logger
	Session  invoicedomain.Session
	Previews *preview.Manager
	HTML     *render.HTMLRenderer
	Pipeline *export.Pipeline
	Printer  pdf.Printer
	Metrics  *obsmetrics.Metrics
}

func NewServer(p Params) *Server {
	return &Server{
		engine:   p.Engine,
		cfg:      p.Cfg,
		log:      p.Log,
		session:  p.Session,
		previews: p.Previews,
		html:     p.HTML,
		pipeline: p.Pipeline,
		printer:  p.Printer,
		metrics:  p.Metrics,
	}
}

func NewEngine(cfg config.Config, log *zap.Logger, m *obsmetrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(m.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

// RegisterRoutes attaches the invoice editing, preview and export routes.
func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api/v1")

	inv := api.Group("/invoice")
	inv.GET("", s.GetInvoice)
	inv.POST("/reset", s.ResetInvoice)
	inv.PATCH("/meta", s.PatchMeta)
	inv.PATCH("/business", s.PatchBusiness)
	inv.PATCH("/business/address", s.PatchBusinessAddress)
	inv.PATCH("/client", s.PatchClient)
	inv.PATCH("/client/address", s.PatchClientAddress)
	inv.PATCH("/settings", s.PatchSettings)
	inv.PATCH("/notes", s.PatchNotes)
	inv.POST("/items", s.AddItem)
	inv.PATCH("/items/:id", s.UpdateItem)
	inv.DELETE("/items/:id", s.RemoveItem)

	api.GET("/preview", s.GetPreview)
	api.PUT("/preview/:surface/viewport", s.SetViewport)

	api.POST("/export/pdf", s.ExportPDF)
	api.POST("/export/print", s.ExportPrint)
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
