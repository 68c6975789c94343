package videogen

import (
	"context"
	"strings"

	"github.com/arabicvideomaker/backend/internal/projects/domain"
	"github.com/arabicvideomaker/backend/internal/projects/repository"
)

// Generator is the provider surface the service depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Result, error)
}

// Outcome reports what one generation request did to the project.
type Outcome struct {
	Status   string
	VideoURL string
}

// Service drives a project through draft -> processing -> completed with one
// synchronous provider call. The processing status is written eagerly; a
// failed provider call leaves the project at processing (no rollback).
type Service struct {
	repo repository.Repository
	gen  Generator
}

func NewService(repo repository.Repository, gen Generator) *Service {
	return &Service{repo: repo, gen: gen}
}

func (s *Service) GenerateVideo(ctx context.Context, projectID string) (*Outcome, error) {
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Text) == "" {
		return nil, domain.ErrEmptyText
	}

	processing := domain.StatusProcessing
	if _, err := s.repo.Update(ctx, projectID, domain.Update{Status: &processing}); err != nil {
		return nil, err
	}

	res, err := s.gen.Generate(ctx, p.Text)
	if err != nil {
		return nil, err
	}

	if res.Status == "completed" {
		completed := domain.StatusCompleted
		url := res.VideoURL
		if _, err := s.repo.Update(ctx, projectID, domain.Update{Status: &completed, VideoURL: &url}); err != nil {
			return nil, err
		}
		return &Outcome{Status: domain.StatusCompleted, VideoURL: url}, nil
	}

	return &Outcome{Status: domain.StatusProcessing}, nil
}
