package application

import (
	"crypto/md5"
	"fmt"
	"sort"
	"strings"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

// Criteria expresses the optional constraints of a listing search.
// A nil pointer or empty collection imposes no constraint; a pointer to zero is a real bound.
type Criteria struct {
	PropertyTypes []domain.PropertyType
	PriceMin      *float64
	PriceMax      *float64
	BedroomsMin   *int
	BathroomsMin  *float64
	Amenities     []string
	City          string
	Query         string

	SquareFeetMin *int
	SquareFeetMax *int
	Status        *domain.Status
}

// IsEmpty reports whether no constraint is set.
func (c Criteria) IsEmpty() bool {
	return len(c.PropertyTypes) == 0 &&
		c.PriceMin == nil && c.PriceMax == nil &&
		c.BedroomsMin == nil && c.BathroomsMin == nil &&
		len(c.Amenities) == 0 &&
		c.City == "" && c.Query == "" &&
		c.SquareFeetMin == nil && c.SquareFeetMax == nil &&
		c.Status == nil
}

// CacheKey derives a stable key for the criteria. Set-valued fields are sorted
// and text fields lower-cased, so equivalent searches share a key.
func (c Criteria) CacheKey() string {
	types := make([]string, len(c.PropertyTypes))
	for i, t := range c.PropertyTypes {
		types[i] = string(t)
	}
	sort.Strings(types)

	amenities := append([]string{}, c.Amenities...)
	sort.Strings(amenities)

	keyParts := []string{
		"types:" + strings.Join(types, ","),
		"price_min:" + formatFloatBound(c.PriceMin),
		"price_max:" + formatFloatBound(c.PriceMax),
		"bedrooms:" + formatIntBound(c.BedroomsMin),
		"bathrooms:" + formatFloatBound(c.BathroomsMin),
		"amenities:" + strings.Join(amenities, ","),
		"city:" + strings.ToLower(c.City),
		"query:" + strings.ToLower(c.Query),
		"sqft_min:" + formatIntBound(c.SquareFeetMin),
		"sqft_max:" + formatIntBound(c.SquareFeetMax),
	}
	if c.Status != nil {
		keyParts = append(keyParts, "status:"+string(*c.Status))
	} else {
		keyParts = append(keyParts, "status:-")
	}

	hash := md5.Sum([]byte(strings.Join(keyParts, "|")))
	return fmt.Sprintf("listings:%x", hash)
}

func formatFloatBound(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func formatIntBound(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
