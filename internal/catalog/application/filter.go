package application

import (
	"strings"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

type predicate func(*domain.Property) bool

// Filter returns the listings satisfying every constraint in c, in catalogue order.
// An empty result is a normal outcome and is returned as an empty slice.
func (s *Store) Filter(c Criteria) []domain.Property {
	preds := c.predicates()
	return s.collect(func(p *domain.Property) bool {
		for _, match := range preds {
			if !match(p) {
				return false
			}
		}
		return true
	}, 0)
}

// predicates builds the conjunction once per search so that absent criteria cost nothing per record.
func (c Criteria) predicates() []predicate {
	var preds []predicate

	if len(c.PropertyTypes) > 0 {
		allowed := make(map[domain.PropertyType]struct{}, len(c.PropertyTypes))
		for _, t := range c.PropertyTypes {
			allowed[t] = struct{}{}
		}
		preds = append(preds, func(p *domain.Property) bool {
			_, ok := allowed[p.PropertyType]
			return ok
		})
	}
	if c.PriceMin != nil {
		min := *c.PriceMin
		preds = append(preds, func(p *domain.Property) bool { return p.Price >= min })
	}
	if c.PriceMax != nil {
		max := *c.PriceMax
		preds = append(preds, func(p *domain.Property) bool { return p.Price <= max })
	}
	if c.BedroomsMin != nil {
		min := *c.BedroomsMin
		preds = append(preds, func(p *domain.Property) bool { return p.Bedrooms >= min })
	}
	if c.BathroomsMin != nil {
		min := *c.BathroomsMin
		preds = append(preds, func(p *domain.Property) bool { return p.Bathrooms >= min })
	}
	if c.SquareFeetMin != nil {
		min := *c.SquareFeetMin
		preds = append(preds, func(p *domain.Property) bool { return p.SquareFeet >= min })
	}
	if c.SquareFeetMax != nil {
		max := *c.SquareFeetMax
		preds = append(preds, func(p *domain.Property) bool { return p.SquareFeet <= max })
	}
	if c.Status != nil {
		status := *c.Status
		preds = append(preds, func(p *domain.Property) bool { return p.Status == status })
	}
	if len(c.Amenities) > 0 {
		required := append([]string{}, c.Amenities...)
		preds = append(preds, func(p *domain.Property) bool {
			for _, amenity := range required {
				if !p.HasAmenity(amenity) {
					return false
				}
			}
			return true
		})
	}
	if c.City != "" {
		city := strings.ToLower(c.City)
		preds = append(preds, func(p *domain.Property) bool {
			return strings.Contains(strings.ToLower(p.City), city)
		})
	}
	if c.Query != "" {
		term := strings.ToLower(c.Query)
		preds = append(preds, func(p *domain.Property) bool {
			return strings.Contains(searchableText(p), term)
		})
	}

	return preds
}

func searchableText(p *domain.Property) string {
	return strings.ToLower(strings.Join([]string{p.Title, p.Description, p.City, p.Address}, " "))
}
