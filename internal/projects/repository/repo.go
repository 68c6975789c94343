package repository

import (
	"context"

	"github.com/arabicvideomaker/backend/internal/projects/domain"
)

// Repository is the project store contract. Validation of client input (empty
// text and the like) belongs to the callers; the store only persists and
// guards the status ordering.
type Repository interface {
	Create(ctx context.Context, text, dialect, voice string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, upd domain.Update) (*domain.Project, error)
	Ping(ctx context.Context) error
}
