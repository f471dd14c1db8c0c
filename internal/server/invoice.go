package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
)

type invoiceResponse struct {
	Invoice  domain.Invoice `json:"invoice"`
	Totals   domain.Totals  `json:"totals"`
	Revision uint64         `json:"revision"`
}

func (s *Server) currentResponse() invoiceResponse {
	inv, rev := s.session.Current()
	return invoiceResponse{
		Invoice:  inv,
		Totals:   inv.ComputeTotals(),
		Revision: rev,
	}
}

func (s *Server) GetInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) ResetInvoice(c *gin.Context) {
	s.session.Reset()
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) PatchMeta(c *gin.Context) {
	var patch domain.MetaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}
	s.session.PatchMeta(patch)
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) PatchBusiness(c *gin.Context) {
	var patch domain.BusinessPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}
	s.session.PatchBusiness(patch)
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) PatchBusinessAddress(c *gin.Context) {
	var patch domain.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}
	s.session.PatchBusinessAddress(patch)
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) PatchClient(c *gin.Context) {
	var patch domain.PartyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}
	s.session.PatchClient(patch)
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) PatchClientAddress(c *gin.Context) {
	var patch domain.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}
	s.session.PatchClientAddress(patch)
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) PatchSettings(c *gin.Context) {
	var patch domain.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}
	if patch.Template != nil && !patch.Template.Valid() {
		AbortWithError(c, newValidationError("template", "unknown_template", "template must be modern, classic or minimal"))
		return
	}
	s.session.PatchSettings(patch)
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) PatchNotes(c *gin.Context) {
	var patch domain.NotesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}
	s.session.PatchNotes(patch)
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) AddItem(c *gin.Context) {
	item := s.session.AddItem()
	inv, rev := s.session.Current()
	c.JSON(http.StatusCreated, gin.H{
		"item":     item,
		"totals":   inv.ComputeTotals(),
		"revision": rev,
	})
}

func (s *Server) UpdateItem(c *gin.Context) {
	var patch domain.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", "request body must be a JSON object"))
		return
	}
	s.session.UpdateItem(c.Param("id"), patch)
	c.JSON(http.StatusOK, s.currentResponse())
}

func (s *Server) RemoveItem(c *gin.Context) {
	s.session.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, s.currentResponse())
}
