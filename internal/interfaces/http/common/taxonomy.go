package common

import (
	"fmt"
	"strings"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
	"github.com/havenrealty/listings-api/internal/catalog/fixture"
)

var amenityLabels = makeLabelIndex(fixture.Amenities())

func makeLabelIndex(items []string) map[string]string {
	index := make(map[string]string, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		index[strings.ToLower(item)] = item
	}
	return index
}

// CanonicalAmenity maps a query value onto the vocabulary label ("pool" becomes "Pool").
// Labels outside the vocabulary are kept as given, trimmed.
func CanonicalAmenity(input string) string {
	trimmed := strings.TrimSpace(input)
	if label, ok := amenityLabels[strings.ToLower(trimmed)]; ok {
		return label
	}
	return trimmed
}

// CanonicalAmenities canonicalises a list and drops duplicates.
func CanonicalAmenities(inputs []string) []string {
	seen := make(map[string]struct{}, len(inputs))
	out := make([]string, 0, len(inputs))
	for _, input := range inputs {
		label := CanonicalAmenity(input)
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

// ParsePropertyType accepts the enum value, its label, or a plural ("houses", "Condos").
func ParsePropertyType(input string) (domain.PropertyType, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	switch lower {
	case "home", "homes", "single-family", "single_family":
		return domain.PropertyTypeHouse, nil
	case "studio", "studios", "flat", "flats":
		return domain.PropertyTypeApartment, nil
	}
	if t, err := domain.NewPropertyType(lower); err == nil {
		return t, nil
	}
	if t, err := domain.NewPropertyType(strings.TrimSuffix(lower, "s")); err == nil {
		return t, nil
	}
	return "", fmt.Errorf("unknown property type %q", input)
}

// ParsePropertyTypes parses every value of the type parameter.
func ParsePropertyTypes(inputs []string) ([]domain.PropertyType, error) {
	out := make([]domain.PropertyType, 0, len(inputs))
	for _, input := range inputs {
		t, err := ParsePropertyType(input)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
