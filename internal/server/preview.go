package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kishankathi24/SpeedyBill/internal/preview"
)

type viewportRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GetPreview renders the invoice as HTML, scaled to fit the named surface.
func (s *Server) GetPreview(c *gin.Context) {
	name := c.DefaultQuery("surface", preview.SurfaceDesktop)
	surface, ok := s.previews.Surface(name)
	if !ok {
		AbortWithError(c, newValidationError("surface", "unknown_surface", "surface must be desktop or mobile"))
		return
	}

	inv, _ := s.session.Current()
	page, err := s.html.RenderHTML(inv, surface.Scale())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// SetViewport records a client-reported host size for one surface and
// returns the recomputed fit scale.
func (s *Server) SetViewport(c *gin.Context) {
	surface, ok := s.previews.Surface(c.Param("surface"))
	if !ok {
		AbortWithError(c, newValidationError("surface", "unknown_surface", "surface must be desktop or mobile"))
		return
	}

	var req viewportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}

	surface.SetViewport(preview.Size{W: req.Width, H: req.Height})
	c.JSON(http.StatusOK, gin.H{
		"surface": surface.Name,
		"scale":   surface.Scale(),
	})
}
