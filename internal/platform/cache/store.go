package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"forestcoin/internal/feature/markets/domain/entity"
)

// Store is a TTL key/value backend for asset lists.
type Store interface {
	// Get returns the entry for key and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]entity.Asset, bool, error)
	// Set stores assets under key for ttl.
	Set(ctx context.Context, key string, assets []entity.Asset, ttl time.Duration) error
}

type memoryEntry struct {
	expiresAt time.Time
	assets    []entity.Asset
}

// MemoryStore is an in-process Store. Expired entries are dropped on write.
type MemoryStore struct {
	now func() time.Time

	mu    sync.RWMutex
	items map[string]memoryEntry
}

// NewMemoryStore creates a MemoryStore using the wall clock.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock creates a MemoryStore reading time from now.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{now: now, items: make(map[string]memoryEntry)}
}

// Get returns a fresh entry for key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]entity.Asset, bool, error) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return e.assets, true, nil
}

// Set stores a private copy of assets until now+ttl.
func (s *MemoryStore) Set(_ context.Context, key string, assets []entity.Asset, ttl time.Duration) error {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.items {
		if !now.Before(e.expiresAt) {
			delete(s.items, k)
		}
	}
	s.items[key] = memoryEntry{expiresAt: now.Add(ttl), assets: entity.CloneAssets(assets)}
	return nil
}

// Len reports the number of stored entries, fresh or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// RedisStore shares entries across server replicas through Redis.
// Values are JSON-encoded; expiry is delegated to the Redis key TTL.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a RedisStore backed by rdb.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Get returns the entry for key. A corrupted entry is deleted and reported as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]entity.Asset, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var out []entity.Asset
	if err := json.Unmarshal(b, &out); err != nil {
		// Delete corrupted cache entry
		_ = s.rdb.Del(ctx, key).Err()
		return nil, false, nil
	}
	return out, true, nil
}

// Set stores assets under key with the given TTL.
func (s *RedisStore) Set(ctx context.Context, key string, assets []entity.Asset, ttl time.Duration) error {
	b, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("marshal assets: %w", err)
	}
	return s.rdb.Set(ctx, key, b, ttl).Err()
}
