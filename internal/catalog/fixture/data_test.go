package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueShape(t *testing.T) {
	props := Properties()
	require.Len(t, props, 8)
	require.Len(t, Agents(), 2)
	assert.Len(t, Amenities(), 20)

	agentIDs := map[string]bool{}
	for _, a := range Agents() {
		agentIDs[a.ID] = true
	}

	seen := map[string]bool{}
	for i, p := range props {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, agentIDs[p.AgentID], "%s references unknown agent %s", p.ID, p.AgentID)
		assert.NotEmpty(t, p.Images, p.ID)
		assert.Positive(t, p.SquareFeet, p.ID)
		assert.Equal(t, "United States", p.Country)
		if i > 0 {
			assert.NotEqual(t, props[i-1].ID, p.ID)
		}
	}
	assert.Equal(t, "prop-1", props[0].ID)
	assert.Equal(t, "prop-8", props[7].ID)
}

func TestCopiesAreIsolated(t *testing.T) {
	first := Properties()
	first[0].Title = "changed"
	first[0].Amenities[0] = "changed"
	*first[0].LotSize = 1

	again := Properties()
	assert.Equal(t, "Modern Lakefront Villa", again[0].Title)
	assert.Equal(t, "Pool", again[0].Amenities[0])
	assert.Equal(t, 12000, *again[0].LotSize)

	roster := Agents()
	roster[0].Specializations[0] = "changed"
	assert.Equal(t, "Luxury Homes", Agents()[0].Specializations[0])

	vocab := Amenities()
	vocab[0] = "changed"
	assert.Equal(t, "Pool", Amenities()[0])
}
