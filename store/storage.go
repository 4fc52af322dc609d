package store

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Storage mirrors a store snapshot as one serialized blob under a fixed key.
// Load returns (nil, nil) when no blob exists yet.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

type RedisStorage struct {
	Client *redis.Client
}

func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := s.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisStorage) Save(ctx context.Context, key string, blob []byte) error {
	return s.Client.Set(ctx, key, blob, 0).Err()
}

// MemoryStorage is the in-process fallback, also used in tests.
type MemoryStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: map[string][]byte{}}
}

func (s *MemoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *MemoryStorage) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, len(blob))
	copy(b, blob)
	s.blobs[key] = b
	return nil
}
