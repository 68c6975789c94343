package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arabicvideomaker/backend/internal/projects/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	projectKeyPrefix = "avm:project:" // Project record: avm:project:{id}
	projectIDSetKey  = "avm:projects" // Set of all project IDs
)

// RedisRepository is the swap-in backend for deployments that want project
// records to outlive a single process. The default deployment keeps the
// in-memory store; nothing in the API depends on durability.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) Create(ctx context.Context, text, dialect, voice string) (*domain.Project, error) {
	p := &domain.Project{
		ID:        uuid.NewString(),
		Text:      text,
		Dialect:   dialect,
		Voice:     voice,
		Status:    domain.StatusDraft,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.projectKey(p.ID), data, 0)
	pipe.SAdd(ctx, projectIDSetKey, p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

func (r *RedisRepository) List(ctx context.Context) ([]domain.Project, error) {
	ids, err := r.client.SMembers(ctx, projectIDSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}

	out := make([]domain.Project, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(ctx, id)
		if err == domain.ErrProjectNotFound {
			// Record vanished between SMembers and Get; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	data, err := r.client.Get(ctx, r.projectKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	return &p, nil
}

func (r *RedisRepository) Update(ctx context.Context, id string, upd domain.Update) (*domain.Project, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
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

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := r.client.Set(ctx, r.projectKey(id), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return p, nil
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) projectKey(id string) string {
	return fmt.Sprintf("%s%s", projectKeyPrefix, id)
}
