package videogen

import (
	"context"
	"testing"

	"github.com/arabicvideomaker/backend/internal/projects/domain"
	"github.com/arabicvideomaker/backend/internal/projects/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	res *Result
	err error
}

func (g *stubGenerator) Generate(context.Context, string) (*Result, error) {
	return g.res, g.err
}

func TestGenerateVideo(t *testing.T) {
	ctx := context.Background()

	t.Run("completes the project on provider success", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		p, err := repo.Create(ctx, "مرحبا", "", "")
		require.NoError(t, err)

		svc := NewService(repo, &stubGenerator{res: &Result{Status: "completed", VideoURL: "http://x/video.mp4"}})
		out, err := svc.GenerateVideo(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, out.Status)
		assert.Equal(t, "http://x/video.mp4", out.VideoURL)

		stored, err := repo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, stored.Status)
		assert.Equal(t, "http://x/video.mp4", stored.VideoURL)
	})

	t.Run("processing result does not complete the project", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		p, err := repo.Create(ctx, "مرحبا", "", "")
		require.NoError(t, err)

		svc := NewService(repo, &stubGenerator{res: &Result{Status: "processing"}})
		out, err := svc.GenerateVideo(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, out.Status)
		assert.Empty(t, out.VideoURL)

		stored, err := repo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, stored.Status)
		assert.Empty(t, stored.VideoURL)
	})

	t.Run("provider failure leaves project at processing", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		p, err := repo.Create(ctx, "مرحبا", "", "")
		require.NoError(t, err)

		svc := NewService(repo, &stubGenerator{err: ErrRateLimited})
		_, err = svc.GenerateVideo(ctx, p.ID)
		assert.ErrorIs(t, err, ErrRateLimited)

		stored, err := repo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, stored.Status)
	})

	t.Run("unknown project", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		svc := NewService(repo, &stubGenerator{res: &Result{Status: "processing"}})

		_, err := svc.GenerateVideo(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("completed project cannot be regenerated", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		p, err := repo.Create(ctx, "مرحبا", "", "")
		require.NoError(t, err)

		svc := NewService(repo, &stubGenerator{res: &Result{Status: "completed", VideoURL: "http://x/a.mp4"}})
		_, err = svc.GenerateVideo(ctx, p.ID)
		require.NoError(t, err)

		_, err = svc.GenerateVideo(ctx, p.ID)
		assert.ErrorIs(t, err, domain.ErrStatusRegression)

		stored, err := repo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, stored.Status)
		assert.Equal(t, "http://x/a.mp4", stored.VideoURL)
	})
}
