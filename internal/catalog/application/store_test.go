package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/domain"
	"github.com/havenrealty/listings-api/internal/catalog/fixture"
)

func newFixtureStore(t *testing.T) *application.Store {
	t.Helper()
	store, err := application.NewStore(fixture.Properties(), fixture.Agents())
	require.NoError(t, err)
	return store
}

func ids(props []domain.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func TestNewStoreRejectsInconsistentData(t *testing.T) {
	agents := fixture.Agents()
	props := fixture.Properties()

	_, err := application.NewStore(append(props, props[0]), agents)
	assert.ErrorIs(t, err, application.ErrDuplicateID)

	_, err = application.NewStore(props, append(agents, agents[1]))
	assert.ErrorIs(t, err, application.ErrDuplicateID)

	orphan := props[0]
	orphan.ID = "prop-orphan"
	orphan.AgentID = "agent-404"
	_, err = application.NewStore(append(props, orphan), agents)
	assert.ErrorIs(t, err, application.ErrUnknownAgent)
}

func TestLookups(t *testing.T) {
	store := newFixtureStore(t)

	for _, p := range fixture.Properties() {
		got, ok := store.PropertyByID(p.ID)
		require.True(t, ok, p.ID)
		assert.Equal(t, p, got)
	}
	for _, a := range fixture.Agents() {
		got, ok := store.AgentByID(a.ID)
		require.True(t, ok, a.ID)
		assert.Equal(t, a, got)
	}

	for _, id := range []string{"", "prop-9", "PROP-1", " prop-1", "agent-1", "🏠", "prop-1\x00"} {
		_, ok := store.PropertyByID(id)
		assert.False(t, ok, "property %q", id)
	}
	_, ok := store.AgentByID("prop-1")
	assert.False(t, ok)
}

func TestStoreIsImmutable(t *testing.T) {
	store := newFixtureStore(t)

	p, _ := store.PropertyByID("prop-1")
	p.Amenities[0] = "Moat"
	p.Title = "changed"

	listed := store.Properties()
	listed[0].Images[0] = "changed"

	again, _ := store.PropertyByID("prop-1")
	assert.Equal(t, "Modern Lakefront Villa", again.Title)
	assert.Equal(t, "Pool", again.Amenities[0])
	assert.NotEqual(t, "changed", again.Images[0])
}

func TestFeatured(t *testing.T) {
	store := newFixtureStore(t)
	featured := store.Featured()
	assert.Equal(t, []string{"prop-1", "prop-2", "prop-3", "prop-5", "prop-8"}, ids(featured))
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
		assert.Equal(t, domain.StatusAvailable, p.Status)
	}
}

func TestFeaturedExcludesUnavailable(t *testing.T) {
	props := fixture.Properties()
	for i := range props {
		if props[i].IsFeatured {
			props[i].Status = domain.StatusPending
		}
	}
	store, err := application.NewStore(props, fixture.Agents())
	require.NoError(t, err)

	featured := store.Featured()
	assert.NotNil(t, featured)
	assert.Empty(t, featured)
}

func TestSimilar(t *testing.T) {
	store := newFixtureStore(t)

	assert.Equal(t, []string{"prop-3", "prop-5", "prop-8"}, ids(store.Similar("prop-1", 3)))
	assert.Equal(t, []string{"prop-3"}, ids(store.Similar("prop-1", 1)))
	assert.Equal(t, []string{"prop-6"}, ids(store.Similar("prop-4", 3)))
	assert.Empty(t, store.Similar("prop-7", 3))
	assert.Empty(t, store.Similar("nope", 3))
}

func TestPropertiesByAgent(t *testing.T) {
	store := newFixtureStore(t)
	assert.Equal(t, []string{"prop-1", "prop-3", "prop-5", "prop-7", "prop-8"}, ids(store.PropertiesByAgent("agent-1")))
	assert.Equal(t, []string{"prop-2", "prop-4", "prop-6"}, ids(store.PropertiesByAgent("agent-2")))
	assert.Empty(t, store.PropertiesByAgent("agent-3"))
}

func TestNearby(t *testing.T) {
	store := newFixtureStore(t)

	near := store.Nearby(37.7749, -122.4194, 200)
	require.Len(t, near, 2)
	assert.Equal(t, "prop-2", near[0].Property.ID)
	assert.InDelta(t, 0, near[0].DistanceMiles, 0.01)
	assert.Equal(t, "prop-1", near[1].Property.ID)
	assert.InDelta(t, 155, near[1].DistanceMiles, 5)

	assert.Empty(t, store.Nearby(0, 0, 50))
	assert.Len(t, store.Nearby(37.7749, -122.4194, 5000), 8)
}

func TestListingTimeZone(t *testing.T) {
	store := newFixtureStore(t)

	sf, _ := store.PropertyByID("prop-2")
	assert.Equal(t, "America/Los_Angeles", application.ListingTimeZone(sf))

	miami, _ := store.PropertyByID("prop-4")
	assert.Equal(t, "America/New_York", application.ListingTimeZone(miami))
}
