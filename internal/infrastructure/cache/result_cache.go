// Package cache provides a two-level search result cache: an in-process ccache
// in front of an optional shared store (redis or memcached).
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/sirupsen/logrus"

	"github.com/havenrealty/listings-api/internal/catalog/application"
)

const (
	defaultMaxSize = 1000
	// promotedTTL bounds how long a shared-store hit lives in the local level.
	promotedTTL = time.Minute
)

// Config wires the cache levels. RedisAddr takes precedence over MemcachedHost.
type Config struct {
	MaxSize       int64
	RedisAddr     string
	RedisPassword string
	MemcachedHost string
	Logger        *logrus.Logger
}

type cachedIDs struct {
	IDs []string `json:"ids"`
}

// sharedStore is the second cache level.
type sharedStore interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// ResultCache implements application.ResultCache.
type ResultCache struct {
	local  *ccache.Cache[*cachedIDs]
	remote sharedStore
	logger *logrus.Logger
}

var _ application.ResultCache = (*ResultCache)(nil)

// New builds the cache. The shared level is skipped when neither redis nor memcached is configured.
func New(cfg Config) *ResultCache {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	var remote sharedStore
	switch {
	case cfg.RedisAddr != "":
		remote = newRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		logger.WithField("addr", cfg.RedisAddr).Info("search cache backed by redis")
	case cfg.MemcachedHost != "":
		remote = newMemcachedStore(cfg.MemcachedHost)
		logger.WithField("host", cfg.MemcachedHost).Info("search cache backed by memcached")
	}
	return newResultCache(cfg.MaxSize, remote, logger)
}

func newResultCache(size int64, remote sharedStore, logger *logrus.Logger) *ResultCache {
	if size <= 0 {
		size = defaultMaxSize
	}
	return &ResultCache{
		local:  ccache.New(ccache.Configure[*cachedIDs]().MaxSize(size)),
		remote: remote,
		logger: logger,
	}
}

// Get looks in the local cache first, then the shared store; shared hits are promoted locally.
func (c *ResultCache) Get(ctx context.Context, key string) ([]string, bool) {
	if item := c.local.Get(key); item != nil && !item.Expired() {
		return append([]string{}, item.Value().IDs...), true
	}
	if c.remote == nil {
		return nil, false
	}

	payload, ok, err := c.remote.Get(ctx, key)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{"key": key, "store": c.remote.Name()}).Warn("shared cache get failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var data cachedIDs
	if err := json.Unmarshal(payload, &data); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("discarding malformed shared cache entry")
		return nil, false
	}
	c.local.Set(key, &data, promotedTTL)
	return append([]string{}, data.IDs...), true
}

// Set stores ids in both levels. Shared-store failures are logged and otherwise ignored.
func (c *ResultCache) Set(ctx context.Context, key string, ids []string, ttl time.Duration) {
	data := &cachedIDs{IDs: append([]string{}, ids...)}
	c.local.Set(key, data, ttl)
	if c.remote == nil || ttl <= 0 {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("marshal cache entry")
		return
	}
	if err := c.remote.Set(ctx, key, payload, ttl); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{"key": key, "store": c.remote.Name()}).Warn("shared cache set failed")
	}
}

// Stop releases the local cache's background worker and the shared store's connections.
func (c *ResultCache) Stop() {
	c.local.Stop()
	if c.remote != nil {
		if err := c.remote.Close(); err != nil {
			c.logger.WithError(err).Warn("closing shared cache")
		}
	}
}
