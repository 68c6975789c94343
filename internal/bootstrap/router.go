package bootstrap

import (
	httpapi "github.com/arabicvideomaker/backend/internal/api/http"
	"github.com/arabicvideomaker/backend/internal/api/http/middleware"

	cataloghttp "github.com/arabicvideomaker/backend/internal/catalog/http"
	projecthttp "github.com/arabicvideomaker/backend/internal/projects/http"
	"github.com/arabicvideomaker/backend/internal/projects/repository"
	"github.com/arabicvideomaker/backend/internal/speech"
	speechhttp "github.com/arabicvideomaker/backend/internal/speech/http"
	"github.com/arabicvideomaker/backend/internal/videogen"
	videohttp "github.com/arabicvideomaker/backend/internal/videogen/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	Store        repository.Repository
	SpeechSvc    *speech.Service
	VideoSvc     *videogen.Service
	MediaDir     string
	MediaBaseURL string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	// Generated preview audio is served straight from the media directory.
	r.Static(dep.MediaBaseURL, dep.MediaDir)

	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware())

	projecthttp.New(dep.Store).Register(api.Group("/projects"))
	speechhttp.New(dep.SpeechSvc).Register(api)
	videohttp.New(dep.VideoSvc).Register(api)
	cataloghttp.New().Register(api)

	return r
}
