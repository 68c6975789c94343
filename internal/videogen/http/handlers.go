package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/arabicvideomaker/backend/internal/projects/domain"
	"github.com/arabicvideomaker/backend/internal/videogen"
	"github.com/gin-gonic/gin"
)

// Handler bundles the dependencies for video generation endpoints.
type Handler struct {
	svc *videogen.Service
}

func New(svc *videogen.Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches video routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/video/generate", h.generate)
	rg.GET("/video/status/:job_id", h.status)
}

type generateReq struct {
	ProjectID string `json:"project_id"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProjectID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "project_id is required"})
		return
	}

	out, err := h.svc.GenerateVideo(c.Request.Context(), req.ProjectID)
	if err != nil {
		status, msg := mapError(err)
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	resp := gin.H{"success": true, "status": out.Status}
	if out.VideoURL != "" {
		resp["video_url"] = out.VideoURL
	}
	c.JSON(http.StatusOK, resp)
}

// status is kept for backwards compatibility with older clients. The provider
// returns the final asset synchronously, so there is no job to poll.
func (h *Handler) status(c *gin.Context) {
	c.JSON(http.StatusGone, gin.H{
		"success": false,
		"error":   "video status polling is no longer supported; generation completes within the generate request",
	})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "project not found"
	case errors.Is(err, domain.ErrEmptyText):
		return http.StatusBadRequest, "project has no text"
	case errors.Is(err, domain.ErrStatusRegression):
		return http.StatusBadRequest, "project video was already generated"
	case errors.Is(err, videogen.ErrMissingAPIKey):
		return http.StatusInternalServerError, videogen.ErrMissingAPIKey.Error()
	case errors.Is(err, videogen.ErrUnauthorized):
		return http.StatusInternalServerError, videogen.ErrUnauthorized.Error()
	case errors.Is(err, videogen.ErrInsufficientBalance):
		return http.StatusInternalServerError, videogen.ErrInsufficientBalance.Error()
	case errors.Is(err, videogen.ErrRateLimited):
		return http.StatusInternalServerError, videogen.ErrRateLimited.Error()
	case errors.Is(err, videogen.ErrTimeout):
		return http.StatusInternalServerError, videogen.ErrTimeout.Error()
	}

	var pe *videogen.ProviderError
	if errors.As(err, &pe) {
		return http.StatusInternalServerError, pe.Error()
	}
	return http.StatusInternalServerError, err.Error()
}
