package common

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

func TestParseOptionalNumbers(t *testing.T) {
	v, err := ParseOptionalFloat("priceMin", " ")
	require.NoError(t, err)
	assert.Nil(t, v, "blank is absent")

	v, err = ParseOptionalFloat("priceMin", "0")
	require.NoError(t, err)
	require.NotNil(t, v, "zero is a real bound")
	assert.Equal(t, 0.0, *v)

	for _, bad := range []string{"abc", "-5", "NaN", "Inf"} {
		_, err = ParseOptionalFloat("priceMin", bad)
		assert.Error(t, err, bad)
	}

	n, err := ParseOptionalInt("bedrooms", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, *n)

	_, err = ParseOptionalInt("bedrooms", "2.5")
	assert.EqualError(t, err, "bedrooms must be a whole number")
}

func TestParseCoordinate(t *testing.T) {
	lat, err := ParseCoordinate("lat", "37.77", 90)
	require.NoError(t, err)
	assert.Equal(t, 37.77, lat)

	_, err = ParseCoordinate("lat", "", 90)
	assert.Error(t, err)
	_, err = ParseCoordinate("lat", "91", 90)
	assert.Error(t, err)
}

func TestSplitListAndPaginate(t *testing.T) {
	assert.Equal(t, []string{"house", "condo", "land"}, SplitList([]string{"house, condo", "", " land "}))
	assert.Empty(t, SplitList(nil))

	start, end := Paginate(8, 2, 3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)
	start, end = Paginate(8, 5, 3)
	assert.Equal(t, 8, start)
	assert.Equal(t, 8, end)
	start, end = Paginate(8, 3, 3)
	assert.Equal(t, 6, start)
	assert.Equal(t, 8, end)

	start, end = Paginate(8, math.MaxInt/50, 100)
	assert.Equal(t, 8, start)
	assert.Equal(t, 8, end)
}

func TestTaxonomy(t *testing.T) {
	assert.Equal(t, "Smart Home", CanonicalAmenity(" smart home"))
	assert.Equal(t, "Ski-in/Ski-out", CanonicalAmenity("Ski-in/Ski-out"))
	assert.Equal(t, []string{"Pool", "Gym"}, CanonicalAmenities([]string{"pool", "POOL", "gym", " "}))

	for input, want := range map[string]domain.PropertyType{
		"house":  domain.PropertyTypeHouse,
		"Houses": domain.PropertyTypeHouse,
		"Condo":  domain.PropertyTypeCondo,
		"studio": domain.PropertyTypeApartment,
	} {
		got, err := ParsePropertyType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := ParsePropertyTypes([]string{"house", "castle"})
	assert.Error(t, err)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(nil, rec, 418, "teapot")
	assert.Equal(t, 418, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"teapot"}`, rec.Body.String())
}
