package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

// cachedQueryService memoises searches. Only ids are cached; hits are resolved
// against the store so a cached answer can never carry stale listing data.
type cachedQueryService struct {
	QueryService
	store  *Store
	cache  ResultCache
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCachedQueryService decorates next so that List results are served from cache.
func NewCachedQueryService(next QueryService, store *Store, cache ResultCache, ttl time.Duration, logger *logrus.Logger) QueryService {
	return &cachedQueryService{
		QueryService: next,
		store:        store,
		cache:        cache,
		ttl:          ttl,
		logger:       logger,
	}
}

func (s *cachedQueryService) List(ctx context.Context, criteria Criteria) ([]domain.Property, error) {
	key := criteria.CacheKey()

	if ids, ok := s.cache.Get(ctx, key); ok {
		if props, resolved := s.resolve(ids); resolved {
			s.logger.WithField("key", key).Debug("listing search cache hit")
			return props, nil
		}
		s.logger.WithField("key", key).Warn("cached listing ids no longer resolve, recomputing")
	}

	props, err := s.QueryService.List(ctx, criteria)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(props))
	for i, p := range props {
		ids[i] = p.ID
	}
	s.cache.Set(ctx, key, ids, s.ttl)
	return props, nil
}

func (s *cachedQueryService) resolve(ids []string) ([]domain.Property, bool) {
	out := make([]domain.Property, 0, len(ids))
	for _, id := range ids {
		p, ok := s.store.PropertyByID(id)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}
