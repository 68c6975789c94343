package repository

import (
	"context"
	"sync"
	"time"

	"github.com/arabicvideomaker/backend/internal/projects/domain"
	"github.com/google/uuid"
)

// MemoryRepository keeps projects in process memory behind a mutex. Records
// live for the lifetime of the process: no eviction, no TTL, no persistence.
type MemoryRepository struct {
	mu       sync.RWMutex
	projects map[string]*domain.Project
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		projects: make(map[string]*domain.Project),
	}
}

func (r *MemoryRepository) Create(_ context.Context, text, dialect, voice string) (*domain.Project, error) {
	p := &domain.Project{
		ID:        uuid.NewString(),
		Text:      text,
		Dialect:   dialect,
		Voice:     voice,
		Status:    domain.StatusDraft,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.projects[p.ID] = p
	r.mu.Unlock()

	cp := *p
	return &cp, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, upd domain.Update) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	if upd.Status != nil {
		if !domain.ValidStatus(*upd.Status) {
			return nil, domain.ErrInvalidStatus
		}
		if !domain.StatusMovesForward(p.Status, *upd.Status) {
			return nil, domain.ErrStatusRegression
		}
		p.Status = *upd.Status
	}
	if upd.VideoURL != nil {
		p.VideoURL = *upd.VideoURL
	}

	cp := *p
	return &cp, nil
}

func (r *MemoryRepository) Ping(_ context.Context) error {
	return nil
}
