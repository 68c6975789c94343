package http

import "github.com/arabicvideomaker/backend/internal/projects/repository"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Handler {
	return &Handler{repo: repo}
}
