package application_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

func TestQueryServiceDetail(t *testing.T) {
	svc := application.NewQueryService(newFixtureStore(t))

	detail, err := svc.Detail(context.Background(), "prop-1")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", detail.Agent.ID)
	assert.Equal(t, []string{"prop-3", "prop-5", "prop-8"}, ids(detail.Similar))
	assert.Equal(t, "America/Los_Angeles", detail.TimeZone)

	_, err = svc.Detail(context.Background(), "prop-404")
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = svc.Similar(context.Background(), "prop-404", 3)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestQueryServiceAgents(t *testing.T) {
	svc := application.NewQueryService(newFixtureStore(t))

	roster, err := svc.Agents(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "agent-1", roster[0].Agent.ID)
	assert.Equal(t, 5, roster[0].ListingCount)
	assert.Equal(t, 3, roster[1].ListingCount)

	profile, err := svc.Agent(context.Background(), "agent-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"prop-2", "prop-4", "prop-6"}, ids(profile.Listings))

	_, err = svc.Agent(context.Background(), "agent-9")
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestQueryServiceHonoursCancelledContext(t *testing.T) {
	svc := application.NewQueryService(newFixtureStore(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.List(ctx, application.Criteria{})
	assert.ErrorIs(t, err, context.Canceled)
}

type mapCache struct {
	mu    sync.Mutex
	items map[string][]string
}

func (c *mapCache) Get(_ context.Context, key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, key string, ids []string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = ids
}

type countingQueryService struct {
	application.QueryService
	lists int
}

func (s *countingQueryService) List(ctx context.Context, c application.Criteria) ([]domain.Property, error) {
	s.lists++
	return s.QueryService.List(ctx, c)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCachedQueryService(t *testing.T) {
	store := newFixtureStore(t)
	inner := &countingQueryService{QueryService: application.NewQueryService(store)}
	cache := &mapCache{items: map[string][]string{}}
	svc := application.NewCachedQueryService(inner, store, cache, time.Minute, quietLogger())

	criteria := application.Criteria{City: "san francisco"}
	first, err := svc.List(context.Background(), criteria)
	require.NoError(t, err)
	second, err := svc.List(context.Background(), application.Criteria{City: "San Francisco"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.lists)

	cache.items[criteria.CacheKey()] = []string{"prop-gone"}
	third, err := svc.List(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, []string{"prop-2"}, ids(third))
	assert.Equal(t, 2, inner.lists)

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 5)
}
