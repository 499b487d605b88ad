package application

import (
	"sort"

	"github.com/bradfitz/latlong"
	"github.com/umahmood/haversine"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

// NearbyProperty pairs a listing with its straight-line distance from the search origin.
type NearbyProperty struct {
	Property      domain.Property
	DistanceMiles float64
}

// Nearby returns the listings within radiusMiles of the origin, closest first.
// Listings at equal distance keep catalogue order.
func (s *Store) Nearby(lat, lng, radiusMiles float64) []NearbyProperty {
	out := []NearbyProperty{}
	if radiusMiles < 0 {
		return out
	}
	for i := range s.properties {
		p := &s.properties[i]
		d := DistanceMiles(lat, lng, p.Latitude, p.Longitude)
		if d <= radiusMiles {
			out = append(out, NearbyProperty{Property: p.Clone(), DistanceMiles: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceMiles < out[j].DistanceMiles
	})
	return out
}

// DistanceMiles uses haversine for a direct great-circle distance.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := haversine.Coord{Lat: lat1, Lon: lon1}
	p2 := haversine.Coord{Lat: lat2, Lon: lon2}
	mi, _ := haversine.Distance(p1, p2)
	return mi
}

// ListingTimeZone resolves the IANA zone of the listing's coordinates, falling back to UTC.
func ListingTimeZone(p domain.Property) string {
	if name := latlong.LookupZoneName(p.Latitude, p.Longitude); name != "" {
		return name
	}
	return "UTC"
}
