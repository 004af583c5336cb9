// Package redisstore keeps the session in Redis under a key prefix.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/sessions"
	"github.com/redis/go-redis/v9"
)

var _ sessions.Storage = (*Store)(nil)

// Store implements sessions.Storage. Multi-key writes run inside MULTI/EXEC.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// New wraps an existing client. Keys are stored as prefix+key.
func New(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr, password string, db int, prefix string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[redisstore.Dial] %w: ping %s: %w", apperrors.ErrStorageUnavailable, addr, err)
	}
	return New(client, prefix), nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	values, err := s.client.MGet(ctx, s.keys(keys)...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: redis mget: %w", apperrors.ErrStorageUnavailable, err)
	}
	for i, v := range values {
		if str, ok := v.(string); ok {
			out[keys[i]] = str
		}
	}
	return out, nil
}

func (s *Store) Set(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, s.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: redis set: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, s.keys(keys)...).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: redis del: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Store) keys(keys []string) []string {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = s.prefix + k
	}
	return prefixed
}
