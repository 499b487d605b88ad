package application

import (
	"context"
	"fmt"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

// queryService is the concrete implementation of QueryService over a Store.
type queryService struct {
	store *Store
}

// NewQueryService creates a query service reading from store.
func NewQueryService(store *Store) QueryService {
	return &queryService{store: store}
}

func (s *queryService) List(ctx context.Context, criteria Criteria) ([]domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Filter(criteria), nil
}

func (s *queryService) Detail(ctx context.Context, id string) (*ListingDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	property, ok := s.store.PropertyByID(id)
	if !ok {
		return nil, fmt.Errorf("property %q: %w", id, ErrNotFound)
	}
	agent, ok := s.store.AgentByID(property.AgentID)
	if !ok {
		return nil, fmt.Errorf("agent %q of property %q: %w", property.AgentID, id, ErrNotFound)
	}
	return &ListingDetail{
		Property: property,
		Agent:    agent,
		Similar:  s.store.Similar(id, SimilarLimit),
		TimeZone: ListingTimeZone(property),
	}, nil
}

func (s *queryService) Featured(ctx context.Context) ([]domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Featured(), nil
}

func (s *queryService) Similar(ctx context.Context, id string, limit int) ([]domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := s.store.PropertyByID(id); !ok {
		return nil, fmt.Errorf("property %q: %w", id, ErrNotFound)
	}
	return s.store.Similar(id, limit), nil
}

func (s *queryService) Nearby(ctx context.Context, lat, lng, radiusMiles float64) ([]NearbyProperty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Nearby(lat, lng, radiusMiles), nil
}

func (s *queryService) Agents(ctx context.Context) ([]AgentSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	roster := s.store.Agents()
	out := make([]AgentSummary, 0, len(roster))
	for _, a := range roster {
		out = append(out, AgentSummary{
			Agent:        a,
			ListingCount: len(s.store.PropertiesByAgent(a.ID)),
		})
	}
	return out, nil
}

func (s *queryService) Agent(ctx context.Context, id string) (*AgentProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	agent, ok := s.store.AgentByID(id)
	if !ok {
		return nil, fmt.Errorf("agent %q: %w", id, ErrNotFound)
	}
	return &AgentProfile{
		Agent:    agent,
		Listings: s.store.PropertiesByAgent(id),
	}, nil
}
