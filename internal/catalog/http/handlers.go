package http

import (
	"net/http"

	"github.com/arabicvideomaker/backend/internal/catalog"
	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// Register attaches the read-only catalog routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/voices", h.voices)
	rg.GET("/dialects", h.dialects)
}

func (h *Handler) voices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "voices": catalog.Voices()})
}

func (h *Handler) dialects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "dialects": catalog.Dialects()})
}
