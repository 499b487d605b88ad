package domain

import "time"

// Property represents one listing of the brokerage.
type Property struct {
	ID           string
	Title        string
	Description  string
	Price        float64
	PriceType    PriceType
	PropertyType PropertyType
	Status       Status

	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Latitude  float64
	Longitude float64

	Bedrooms   int
	Bathrooms  float64
	SquareFeet int
	LotSize    *int
	YearBuilt  int
	Parking    int

	Amenities      []string
	Images         []string
	VirtualTourURL string

	AgentID string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ListingDate time.Time

	IsFeatured bool
}

// Clone returns a deep copy so that slices and pointers are never shared with the caller.
func (p Property) Clone() Property {
	out := p
	out.Amenities = append([]string{}, p.Amenities...)
	out.Images = append([]string{}, p.Images...)
	if p.LotSize != nil {
		lot := *p.LotSize
		out.LotSize = &lot
	}
	return out
}

// HasAmenity reports whether the listing carries the given amenity label.
func (p Property) HasAmenity(label string) bool {
	for _, amenity := range p.Amenities {
		if amenity == label {
			return true
		}
	}
	return false
}

// CoverImage returns the primary image, or "" when the listing has none.
func (p Property) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// IsStudio reports a zero-bedroom listing.
func (p Property) IsStudio() bool {
	return p.Bedrooms == 0
}
