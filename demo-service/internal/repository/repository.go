package repository

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"
)

// ItemRepository holds the ordered list of submitted items.
type ItemRepository interface {
	Append(ctx context.Context, item string) error
	List(ctx context.Context) ([]string, error)
	Reset(ctx context.Context) error
}

// MemoryItemRepository keeps items for the lifetime of the value.
type MemoryItemRepository struct {
	mu    sync.Mutex
	items []string
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{}
}

func (r *MemoryItemRepository) Append(_ context.Context, item string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

// List returns a copy, never nil.
func (r *MemoryItemRepository) List(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]string, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *MemoryItemRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}

// RedisItemRepository stores items in a redis list so replicas share it.
type RedisItemRepository struct {
	rdb *redis.Client
	key string
}

const defaultItemsKey = "demo:items"

func NewRedisItemRepository(rdb *redis.Client) *RedisItemRepository {
	return &RedisItemRepository{rdb: rdb, key: defaultItemsKey}
}

func (r *RedisItemRepository) Append(ctx context.Context, item string) error {
	return r.rdb.RPush(ctx, r.key, item).Err()
}

func (r *RedisItemRepository) List(ctx context.Context) ([]string, error) {
	items, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

func (r *RedisItemRepository) Reset(ctx context.Context) error {
	return r.rdb.Del(ctx, r.key).Err()
}
