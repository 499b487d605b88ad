package domain

import (
	"fmt"
	"strings"
)

// PriceType controls how a price is interpreted and displayed.
type PriceType string

const (
	PriceTypeSale PriceType = "sale"
	PriceTypeRent PriceType = "rent"
)

func NewPriceType(value string) (PriceType, error) {
	switch t := PriceType(strings.ToLower(strings.TrimSpace(value))); t {
	case PriceTypeSale, PriceTypeRent:
		return t, nil
	default:
		return "", fmt.Errorf("invalid price type: %q", value)
	}
}

func (t PriceType) String() string {
	return string(t)
}

// Label is the badge text shown on listing cards.
func (t PriceType) Label() string {
	if t == PriceTypeRent {
		return "For Rent"
	}
	return "For Sale"
}

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeCondo      PropertyType = "condo"
	PropertyTypeTownhouse  PropertyType = "townhouse"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

var propertyTypeLabels = map[PropertyType]string{
	PropertyTypeHouse:      "House",
	PropertyTypeApartment:  "Apartment",
	PropertyTypeCondo:      "Condo",
	PropertyTypeTownhouse:  "Townhouse",
	PropertyTypeLand:       "Land",
	PropertyTypeCommercial: "Commercial",
}

// PropertyTypes lists every property type in display order.
func PropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeHouse,
		PropertyTypeApartment,
		PropertyTypeCondo,
		PropertyTypeTownhouse,
		PropertyTypeLand,
		PropertyTypeCommercial,
	}
}

func NewPropertyType(value string) (PropertyType, error) {
	t := PropertyType(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := propertyTypeLabels[t]; !ok {
		return "", fmt.Errorf("invalid property type: %q", value)
	}
	return t, nil
}

func (t PropertyType) String() string {
	return string(t)
}

func (t PropertyType) Label() string {
	if label, ok := propertyTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Status is the descriptive lifecycle state of a listing. It is set once in the
// catalogue and never transitions at runtime.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
	StatusRented    Status = "rented"
)

func NewStatus(value string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(value))); s {
	case StatusAvailable, StatusPending, StatusSold, StatusRented:
		return s, nil
	default:
		return "", fmt.Errorf("invalid status: %q", value)
	}
}

func (s Status) String() string {
	return string(s)
}
