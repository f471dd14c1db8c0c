package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportPDF runs the rasterizing export pipeline and streams the finished
// PDF back as an attachment.
func (s *Server) ExportPDF(c *gin.Context) {
	result, err := s.pipeline.Export(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// ExportPrint renders the invoice through the paginated A4 print path.
func (s *Server) ExportPrint(c *gin.Context) {
	inv, _ := s.session.Current()
	job, err := s.printer.Print(c.Request.Context(), inv)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", job.Title+".pdf"))
	c.Data(http.StatusOK, "application/pdf", job.Document)
}
