package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func TestFilter(t *testing.T) {
	store := newFixtureStore(t)
	all := []string{"prop-1", "prop-2", "prop-3", "prop-4", "prop-5", "prop-6", "prop-7", "prop-8"}

	cases := []struct {
		name     string
		criteria application.Criteria
		want     []string
	}{
		{name: "no criteria", criteria: application.Criteria{}, want: all},
		{
			name:     "house with five bedrooms",
			criteria: application.Criteria{PropertyTypes: []domain.PropertyType{domain.PropertyTypeHouse}, BedroomsMin: ptr(5)},
			want:     []string{"prop-1", "prop-5"},
		},
		{
			name:     "several types",
			criteria: application.Criteria{PropertyTypes: []domain.PropertyType{domain.PropertyTypeApartment, domain.PropertyTypeCondo}},
			want:     []string{"prop-2", "prop-4", "prop-6"},
		},
		{name: "type nobody has", criteria: application.Criteria{PropertyTypes: []domain.PropertyType{domain.PropertyTypeLand}}, want: []string{}},
		{name: "city is case insensitive", criteria: application.Criteria{City: "san francisco"}, want: []string{"prop-2"}},
		{name: "city substring", criteria: application.Criteria{City: "LOS"}, want: []string{"prop-6"}},
		{name: "query in title", criteria: application.Criteria{Query: "lakefront"}, want: []string{"prop-1"}},
		{name: "query in description only", criteria: application.Criteria{Query: "washer/dryer"}, want: []string{"prop-6"}},
		{name: "query in address", criteria: application.Criteria{Query: "beacon street"}, want: []string{"prop-7"}},
		{name: "query does not search amenities", criteria: application.Criteria{Query: "ski-in"}, want: []string{}},
		{name: "amenities subset", criteria: application.Criteria{Amenities: []string{"Pool", "Smart Home"}}, want: []string{"prop-1", "prop-8"}},
		{name: "unknown amenity", criteria: application.Criteria{Amenities: []string{"Helipad"}}, want: []string{}},
		{name: "amenity labels are exact", criteria: application.Criteria{Amenities: []string{"pool"}}, want: []string{}},
		{
			name:     "inclusive price bounds",
			criteria: application.Criteria{PriceMin: ptr(1800.0), PriceMax: ptr(5500.0)},
			want:     []string{"prop-4", "prop-6"},
		},
		{name: "zero price minimum is a constraint that everything meets", criteria: application.Criteria{PriceMin: ptr(0.0)}, want: all},
		{name: "zero price maximum excludes everything", criteria: application.Criteria{PriceMax: ptr(0.0)}, want: []string{}},
		{name: "zero bedrooms includes studios", criteria: application.Criteria{BedroomsMin: ptr(0)}, want: all},
		{name: "half baths", criteria: application.Criteria{BathroomsMin: ptr(4.5)}, want: []string{"prop-1", "prop-5", "prop-8"}},
		{name: "square feet minimum", criteria: application.Criteria{SquareFeetMin: ptr(4000)}, want: []string{"prop-1", "prop-5", "prop-7", "prop-8"}},
		{name: "square feet maximum", criteria: application.Criteria{SquareFeetMax: ptr(550)}, want: []string{"prop-6"}},
		{name: "status", criteria: application.Criteria{Status: ptr(domain.StatusPending)}, want: []string{"prop-7"}},
		{
			name: "everything combined",
			criteria: application.Criteria{
				PropertyTypes: []domain.PropertyType{domain.PropertyTypeHouse},
				PriceMin:      ptr(1000000.0),
				PriceMax:      ptr(3000000.0),
				BedroomsMin:   ptr(4),
				BathroomsMin:  ptr(4.0),
				Amenities:     []string{"Wine Cellar"},
				City:          "tahoe",
				Query:         "villa",
			},
			want: []string{"prop-1"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := store.Filter(tc.criteria)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilterPriceBoundsHold(t *testing.T) {
	store := newFixtureStore(t)
	bounds := [][2]float64{{0, 1800}, {1800, 1800}, {5500, 2000000}, {900000, 5750000}, {6000000, 7000000}}
	for _, b := range bounds {
		for _, p := range store.Filter(application.Criteria{PriceMin: ptr(b[0]), PriceMax: ptr(b[1])}) {
			assert.GreaterOrEqual(t, p.Price, b[0])
			assert.LessOrEqual(t, p.Price, b[1])
		}
	}
}

func TestCriteriaCacheKey(t *testing.T) {
	a := application.Criteria{Amenities: []string{"Pool", "Gym"}, City: "Miami"}
	b := application.Criteria{Amenities: []string{"Gym", "Pool"}, City: "miami"}
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	absent := application.Criteria{}
	zero := application.Criteria{PriceMin: ptr(0.0)}
	assert.NotEqual(t, absent.CacheKey(), zero.CacheKey())
	assert.True(t, absent.IsEmpty())
	assert.False(t, zero.IsEmpty())

	pending := application.Criteria{Status: ptr(domain.StatusPending)}
	assert.NotEqual(t, absent.CacheKey(), pending.CacheKey())
}
