package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name      string
		price     float64
		priceType PriceType
		want      string
	}{
		{name: "rent", price: 1800, priceType: PriceTypeRent, want: "$1,800/mo"},
		{name: "sale", price: 895000, priceType: PriceTypeSale, want: "$895,000"},
		{name: "millions", price: 2450000, priceType: PriceTypeSale, want: "$2,450,000"},
		{name: "below thousand", price: 950, priceType: PriceTypeRent, want: "$950/mo"},
		{name: "zero", price: 0, priceType: PriceTypeSale, want: "$0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPrice(tc.price, tc.priceType))
		})
	}
}

func TestPricePerSquareFoot(t *testing.T) {
	value, ok := PricePerSquareFoot(Property{Price: 2450000, PriceType: PriceTypeSale, SquareFeet: 4800})
	require.True(t, ok)
	assert.Equal(t, 510, value)
	assert.Equal(t, "$510/sqft", FormatPricePerSquareFoot(value))

	_, ok = PricePerSquareFoot(Property{Price: 5500, PriceType: PriceTypeRent, SquareFeet: 1600})
	assert.False(t, ok, "rentals have no price per square foot")

	_, ok = PricePerSquareFoot(Property{Price: 100000, PriceType: PriceTypeSale})
	assert.False(t, ok, "zero floor area must not divide")
}

func TestValueObjects(t *testing.T) {
	pt, err := NewPropertyType(" House ")
	require.NoError(t, err)
	assert.Equal(t, PropertyTypeHouse, pt)
	assert.Equal(t, "House", pt.Label())

	_, err = NewPropertyType("castle")
	assert.Error(t, err)

	status, err := NewStatus("PENDING")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	_, err = NewStatus("archived")
	assert.Error(t, err)

	priceType, err := NewPriceType("rent")
	require.NoError(t, err)
	assert.Equal(t, "For Rent", priceType.Label())
	assert.Len(t, PropertyTypes(), 6)
}

func TestPropertyClone(t *testing.T) {
	lot := 6000
	original := Property{ID: "p", Amenities: []string{"Pool"}, Images: []string{"a.jpg"}, LotSize: &lot}
	clone := original.Clone()
	clone.Amenities[0] = "Gym"
	clone.Images[0] = "b.jpg"
	*clone.LotSize = 1

	assert.Equal(t, "Pool", original.Amenities[0])
	assert.Equal(t, "a.jpg", original.CoverImage())
	assert.Equal(t, 6000, *original.LotSize)
	assert.True(t, original.HasAmenity("Pool"))
	assert.False(t, original.HasAmenity("pool"))
}
