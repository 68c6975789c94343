package http

import (
	"errors"
	"net/http"

	"github.com/arabicvideomaker/backend/internal/speech"
	"github.com/gin-gonic/gin"
)

// Handler bundles the dependencies for speech preview endpoints.
type Handler struct {
	svc *speech.Service
}

func New(svc *speech.Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches speech routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/tts/preview", h.preview)
}

type previewReq struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

func (h *Handler) preview(c *gin.Context) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.SynthesizePreview(c.Request.Context(), req.Text, req.Voice)
	if err != nil {
		if errors.Is(err, speech.ErrTextRequired) || errors.Is(err, speech.ErrVoiceRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp := gin.H{
		"success":   true,
		"audio_url": p.AudioURL,
		"duration":  p.Duration,
	}
	if p.VoiceFallback {
		resp["voice_fallback"] = true
	}
	c.JSON(http.StatusOK, resp)
}
