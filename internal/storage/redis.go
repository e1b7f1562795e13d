package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/grillaway/internal/redissvc"
)

// RedisStore maps keys one to one onto Redis string values.
type RedisStore struct {
	svc *redissvc.RedisService
}

func NewRedisStore(svc *redissvc.RedisService) *RedisStore {
	return &RedisStore{svc: svc}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.svc.Rdb().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return data, err
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.svc.Rdb().Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Close() error { return s.svc.Close() }
