package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
)

type memcachedStore struct {
	client *memcache.Client
}

func newMemcachedStore(host string) *memcachedStore {
	return &memcachedStore{client: memcache.New(host)}
}

func (s *memcachedStore) Name() string { return "memcached" }

func (s *memcachedStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, err := s.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return item.Value, true, nil
}

func (s *memcachedStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	seconds := int32(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return s.client.Set(&memcache.Item{Key: key, Value: value, Expiration: seconds})
}

// Close is a no-op; idle memcached connections are reaped by the client.
func (s *memcachedStore) Close() error {
	return nil
}

type redisStore struct {
	client *redis.Client
}

func newRedisStore(addr, password string) *redisStore {
	return &redisStore{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})}
}

func (s *redisStore) Name() string { return "redis" }

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
