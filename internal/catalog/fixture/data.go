// Package fixture holds the brokerage's compiled-in catalogue.
package fixture

import (
	"time"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

const unsplash = "https://images.unsplash.com/photo-"

func listingImage(id string) string {
	return unsplash + id + "?w=1200&h=800&fit=crop"
}

func portrait(id string) string {
	return unsplash + id + "?w=400&h=400&fit=crop"
}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func lot(sqft int) *int {
	return &sqft
}

var agents = []domain.Agent{
	{
		ID:              "agent-1",
		Name:            "Sarah Mitchell",
		Email:           "sarah@havenrealty.com",
		Phone:           "(555) 123-4567",
		Photo:           portrait("1494790108377-be9c29b29330"),
		Bio:             "With over 12 years of experience in luxury real estate, Sarah specializes in helping clients find their perfect home.",
		License:         "RE-2024-1234",
		YearsExperience: 12,
		Specializations: []string{"Luxury Homes", "Waterfront Properties"},
		Rating:          4.9,
		ReviewCount:     156,
	},
	{
		ID:              "agent-2",
		Name:            "Michael Chen",
		Email:           "michael@havenrealty.com",
		Phone:           "(555) 234-5678",
		Photo:           portrait("1472099645785-5658abf4ff4e"),
		Bio:             "Michael brings a data-driven approach to real estate, ensuring clients make informed investment decisions.",
		License:         "RE-2024-5678",
		YearsExperience: 8,
		Specializations: []string{"Investment Properties", "Commercial Real Estate"},
		Rating:          4.8,
		ReviewCount:     98,
	},
}

var properties = []domain.Property{
	{
		ID:           "prop-1",
		Title:        "Modern Lakefront Villa",
		Description:  "Experience luxury living in this stunning lakefront villa featuring floor-to-ceiling windows, an open-concept living area, and breathtaking water views. The gourmet kitchen boasts premium appliances and custom cabinetry. The master suite offers a private balcony overlooking the lake.",
		Price:        2450000,
		PriceType:    domain.PriceTypeSale,
		PropertyType: domain.PropertyTypeHouse,
		Status:       domain.StatusAvailable,
		Address:      "1234 Lakeside Drive",
		City:         "Lake Tahoe",
		State:        "California",
		ZipCode:      "96150",
		Country:      "United States",
		Latitude:     38.9399,
		Longitude:    -119.9772,
		Bedrooms:     5,
		Bathrooms:    4.5,
		SquareFeet:   4800,
		LotSize:      lot(12000),
		YearBuilt:    2021,
		Parking:      3,
		Amenities:    []string{"Pool", "Smart Home", "Wine Cellar", "Home Theater", "Waterfront", "Fireplace"},
		Images: []string{
			listingImage("1613490493576-7fde63acd811"),
			listingImage("1600596542815-ffad4c1539a9"),
			listingImage("1600585154340-be6161a56a0c"),
			listingImage("1600607687939-ce8a6c25118c"),
		},
		AgentID:     "agent-1",
		CreatedAt:   day(time.January, 15),
		UpdatedAt:   day(time.January, 15),
		ListingDate: day(time.January, 15),
		IsFeatured:  true,
	},
	{
		ID:           "prop-2",
		Title:        "Downtown Penthouse Loft",
		Description:  "Sophisticated urban living awaits in this stunning penthouse loft. Featuring exposed brick walls, industrial-chic design, and panoramic city views. The open floor plan seamlessly connects living, dining, and kitchen areas.",
		Price:        1875000,
		PriceType:    domain.PriceTypeSale,
		PropertyType: domain.PropertyTypeCondo,
		Status:       domain.StatusAvailable,
		Address:      "500 Metropolitan Ave, PH1",
		City:         "San Francisco",
		State:        "California",
		ZipCode:      "94102",
		Country:      "United States",
		Latitude:     37.7749,
		Longitude:    -122.4194,
		Bedrooms:     3,
		Bathrooms:    2.5,
		SquareFeet:   2800,
		YearBuilt:    2019,
		Parking:      2,
		Amenities:    []string{"Rooftop Access", "Concierge", "Gym", "Smart Home", "City View", "High Ceilings"},
		Images: []string{
			listingImage("1502672260266-1c1ef2d93688"),
			listingImage("1560448204-e02f11c3d0e2"),
			listingImage("1600566753086-00f18fb6b3ea"),
		},
		AgentID:     "agent-2",
		CreatedAt:   day(time.February, 1),
		UpdatedAt:   day(time.February, 1),
		ListingDate: day(time.February, 1),
		IsFeatured:  true,
	},
	{
		ID:           "prop-3",
		Title:        "Charming Craftsman Bungalow",
		Description:  "Step into timeless elegance with this beautifully restored Craftsman bungalow. Original hardwood floors, built-in cabinetry, and a wrap-around porch create warm, inviting spaces. Updated kitchen and bathrooms blend modern convenience with classic charm.",
		Price:        895000,
		PriceType:    domain.PriceTypeSale,
		PropertyType: domain.PropertyTypeHouse,
		Status:       domain.StatusAvailable,
		Address:      "742 Oak Street",
		City:         "Portland",
		State:        "Oregon",
		ZipCode:      "97205",
		Country:      "United States",
		Latitude:     45.5155,
		Longitude:    -122.6789,
		Bedrooms:     4,
		Bathrooms:    2,
		SquareFeet:   2200,
		LotSize:      lot(6000),
		YearBuilt:    1925,
		Parking:      1,
		Amenities:    []string{"Garden", "Fireplace", "Hardwood Floors", "Updated Kitchen", "Wrap-around Porch"},
		Images: []string{
			listingImage("1518780664697-55e3ad937233"),
			listingImage("1600047509807-ba8f99d2cdde"),
			listingImage("1600573472592-401b489a3cdc"),
		},
		AgentID:     "agent-1",
		CreatedAt:   day(time.January, 20),
		UpdatedAt:   day(time.January, 20),
		ListingDate: day(time.January, 20),
		IsFeatured:  true,
	},
	{
		ID:           "prop-4",
		Title:        "Luxury High-Rise Apartment",
		Description:  "Live above it all in this sophisticated high-rise apartment with stunning ocean views. Floor-to-ceiling windows flood the space with natural light. Building amenities include infinity pool, fitness center, and 24-hour concierge.",
		Price:        5500,
		PriceType:    domain.PriceTypeRent,
		PropertyType: domain.PropertyTypeApartment,
		Status:       domain.StatusAvailable,
		Address:      "888 Ocean Boulevard, Unit 2401",
		City:         "Miami",
		State:        "Florida",
		ZipCode:      "33139",
		Country:      "United States",
		Latitude:     25.7617,
		Longitude:    -80.1918,
		Bedrooms:     2,
		Bathrooms:    2,
		SquareFeet:   1600,
		YearBuilt:    2022,
		Parking:      1,
		Amenities:    []string{"Ocean View", "Pool", "Gym", "Concierge", "Balcony", "In-unit Laundry"},
		Images: []string{
			listingImage("1545324418-cc1a3fa10c00"),
			listingImage("1522708323590-d24dbb6b0267"),
			listingImage("1560185007-c5ca9d2c014d"),
		},
		AgentID:     "agent-2",
		CreatedAt:   day(time.February, 10),
		UpdatedAt:   day(time.February, 10),
		ListingDate: day(time.February, 10),
	},
	{
		ID:           "prop-5",
		Title:        "Contemporary Mountain Retreat",
		Description:  "Escape to this architectural masterpiece nestled in the mountains. Floor-to-ceiling windows frame spectacular views. The great room features a soaring stone fireplace. Multiple outdoor living spaces perfect for entertaining.",
		Price:        3200000,
		PriceType:    domain.PriceTypeSale,
		PropertyType: domain.PropertyTypeHouse,
		Status:       domain.StatusAvailable,
		Address:      "2100 Summit Ridge Road",
		City:         "Aspen",
		State:        "Colorado",
		ZipCode:      "81611",
		Country:      "United States",
		Latitude:     39.1911,
		Longitude:    -106.8175,
		Bedrooms:     6,
		Bathrooms:    5.5,
		SquareFeet:   5500,
		LotSize:      lot(20000),
		YearBuilt:    2020,
		Parking:      4,
		Amenities:    []string{"Mountain View", "Hot Tub", "Ski-in/Ski-out", "Wine Cellar", "Home Theater", "Smart Home"},
		Images: []string{
			listingImage("1600585154526-990dced4db0d"),
			listingImage("1600566753190-17f0baa2a6c3"),
			listingImage("1600210492493-0946911123ea"),
		},
		AgentID:     "agent-1",
		CreatedAt:   day(time.January, 25),
		UpdatedAt:   day(time.January, 25),
		ListingDate: day(time.January, 25),
		IsFeatured:  true,
	},
	{
		ID:           "prop-6",
		Title:        "Cozy Studio in Arts District",
		Description:  "Perfect starter home or investment property in the vibrant Arts District. This efficiently designed studio features an updated kitchen, in-unit washer/dryer, and access to building rooftop. Walking distance to galleries, restaurants, and transit.",
		Price:        1800,
		PriceType:    domain.PriceTypeRent,
		PropertyType: domain.PropertyTypeApartment,
		Status:       domain.StatusAvailable,
		Address:      "325 Gallery Row",
		City:         "Los Angeles",
		State:        "California",
		ZipCode:      "90013",
		Country:      "United States",
		Latitude:     34.0407,
		Longitude:    -118.2468,
		Bedrooms:     0,
		Bathrooms:    1,
		SquareFeet:   550,
		YearBuilt:    2018,
		Parking:      1,
		Amenities:    []string{"Rooftop Access", "In-unit Laundry", "Pet Friendly", "Bike Storage"},
		Images: []string{
			listingImage("1536376072261-38c75010e6c9"),
			listingImage("1560448075-cbc16bb4af8e"),
		},
		AgentID:     "agent-2",
		CreatedAt:   day(time.February, 15),
		UpdatedAt:   day(time.February, 15),
		ListingDate: day(time.February, 15),
	},
	{
		ID:           "prop-7",
		Title:        "Historic Townhouse",
		Description:  "Elegant brownstone townhouse in a prestigious historic district. Original architectural details blend seamlessly with modern updates. Private garden, chef's kitchen, and multiple fireplaces throughout.",
		Price:        4500000,
		PriceType:    domain.PriceTypeSale,
		PropertyType: domain.PropertyTypeTownhouse,
		Status:       domain.StatusPending,
		Address:      "18 Beacon Street",
		City:         "Boston",
		State:        "Massachusetts",
		ZipCode:      "02108",
		Country:      "United States",
		Latitude:     42.3601,
		Longitude:    -71.0589,
		Bedrooms:     5,
		Bathrooms:    4,
		SquareFeet:   4200,
		LotSize:      lot(2500),
		YearBuilt:    1890,
		Parking:      2,
		Amenities:    []string{"Garden", "Fireplace", "Wine Cellar", "Library", "Historic Details"},
		Images: []string{
			listingImage("1600047509358-9dc75507daeb"),
			listingImage("1600585154363-67eb9e2e2099"),
			listingImage("1600573472591-ee6c563aaec8"),
		},
		AgentID:     "agent-1",
		CreatedAt:   day(time.January, 10),
		UpdatedAt:   day(time.February, 20),
		ListingDate: day(time.January, 10),
	},
	{
		ID:           "prop-8",
		Title:        "Beachfront Paradise",
		Description:  "Wake up to the sound of waves in this stunning beachfront property. Direct beach access, infinity pool overlooking the ocean, and spacious outdoor entertaining areas. Open floor plan designed for coastal living.",
		Price:        5750000,
		PriceType:    domain.PriceTypeSale,
		PropertyType: domain.PropertyTypeHouse,
		Status:       domain.StatusAvailable,
		Address:      "1 Oceanfront Way",
		City:         "Malibu",
		State:        "California",
		ZipCode:      "90265",
		Country:      "United States",
		Latitude:     34.0259,
		Longitude:    -118.7798,
		Bedrooms:     4,
		Bathrooms:    4.5,
		SquareFeet:   4000,
		LotSize:      lot(8000),
		YearBuilt:    2023,
		Parking:      3,
		Amenities:    []string{"Beachfront", "Pool", "Smart Home", "Outdoor Kitchen", "Ocean View", "Guest House"},
		Images: []string{
			listingImage("1512917774080-9991f1c4c750"),
			listingImage("1600596542815-ffad4c1539a9"),
			listingImage("1600585154340-be6161a56a0c"),
		},
		AgentID:     "agent-1",
		CreatedAt:   day(time.February, 5),
		UpdatedAt:   day(time.February, 5),
		ListingDate: day(time.February, 5),
		IsFeatured:  true,
	},
}

var amenities = []string{
	"Pool",
	"Gym",
	"Concierge",
	"Smart Home",
	"Fireplace",
	"Garden",
	"Rooftop Access",
	"Ocean View",
	"Mountain View",
	"City View",
	"Waterfront",
	"Wine Cellar",
	"Home Theater",
	"Hot Tub",
	"Pet Friendly",
	"In-unit Laundry",
	"Hardwood Floors",
	"High Ceilings",
	"Balcony",
	"Parking",
}

// Properties returns a fresh copy of the listing table in catalogue order.
func Properties() []domain.Property {
	out := make([]domain.Property, len(properties))
	for i, p := range properties {
		out[i] = p.Clone()
	}
	return out
}

// Agents returns a fresh copy of the agent roster in catalogue order.
func Agents() []domain.Agent {
	out := make([]domain.Agent, len(agents))
	for i, a := range agents {
		out[i] = a.Clone()
	}
	return out
}

// Amenities returns the amenity vocabulary offered by the search form.
func Amenities() []string {
	return append([]string{}, amenities...)
}
