package application

import (
	"context"
	"errors"
	"time"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

// ErrNotFound is returned by the query service when a listing or agent does not exist.
var ErrNotFound = errors.New("not found")

// SimilarLimit is how many related listings a detail view carries.
const SimilarLimit = 3

// QueryService describes the read use-cases of the listing catalogue.
type QueryService interface {
	List(ctx context.Context, criteria Criteria) ([]domain.Property, error)
	Detail(ctx context.Context, id string) (*ListingDetail, error)
	Featured(ctx context.Context) ([]domain.Property, error)
	Similar(ctx context.Context, id string, limit int) ([]domain.Property, error)
	Nearby(ctx context.Context, lat, lng, radiusMiles float64) ([]NearbyProperty, error)
	Agents(ctx context.Context) ([]AgentSummary, error)
	Agent(ctx context.Context, id string) (*AgentProfile, error)
}

// ResultCache stores search results as ordered listing ids.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, ids []string, ttl time.Duration)
}

// ListingDetail is everything a listing page renders.
type ListingDetail struct {
	Property domain.Property
	Agent    domain.Agent
	Similar  []domain.Property
	TimeZone string
}

// AgentSummary is one roster entry.
type AgentSummary struct {
	Agent        domain.Agent
	ListingCount int
}

// AgentProfile is an agent together with their listings.
type AgentProfile struct {
	Agent    domain.Agent
	Listings []domain.Property
}
