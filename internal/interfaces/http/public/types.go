package public

import (
	"time"

	catalogapp "github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/domain"
	inquirydomain "github.com/havenrealty/listings-api/internal/inquiry/domain"
)

type propertyResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	PriceType         string    `json:"priceType"`
	PriceTypeLabel    string    `json:"priceTypeLabel"`
	FormattedPrice    string    `json:"formattedPrice"`
	PropertyType      string    `json:"propertyType"`
	PropertyTypeLabel string    `json:"propertyTypeLabel"`
	Status            string    `json:"status"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	ZipCode           string    `json:"zipCode"`
	Country           string    `json:"country"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Bedrooms          int       `json:"bedrooms"`
	Bathrooms         float64   `json:"bathrooms"`
	SquareFeet        int       `json:"squareFeet"`
	LotSize           *int      `json:"lotSize,omitempty"`
	YearBuilt         int       `json:"yearBuilt"`
	Parking           int       `json:"parking"`
	Amenities         []string  `json:"amenities"`
	Images            []string  `json:"images"`
	CoverImage        string    `json:"coverImage,omitempty"`
	VirtualTourURL    string    `json:"virtualTourUrl,omitempty"`
	AgentID           string    `json:"agentId"`
	IsFeatured        bool      `json:"isFeatured"`
	ListingDate       time.Time `json:"listingDate"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type propertyListResponse struct {
	Items []propertyResponse `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type propertyDetailResponse struct {
	Property              propertyResponse   `json:"property"`
	Agent                 agentResponse      `json:"agent"`
	Similar               []propertyResponse `json:"similar"`
	PricePerSquareFoot    *int               `json:"pricePerSqFt,omitempty"`
	FormattedPricePerSqFt string             `json:"formattedPricePerSqFt,omitempty"`
	TimeZone              string             `json:"timeZone"`
}

type nearbyPropertyResponse struct {
	propertyResponse
	DistanceMiles float64 `json:"distanceMiles"`
}

type agentResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Photo           string   `json:"photo"`
	Bio             string   `json:"bio"`
	License         string   `json:"license"`
	YearsExperience int      `json:"yearsExperience"`
	Specializations []string `json:"specializations"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
}

type agentSummaryResponse struct {
	agentResponse
	ListingCount int `json:"listingCount"`
}

type agentProfileResponse struct {
	Agent    agentResponse      `json:"agent"`
	Listings []propertyResponse `json:"listings"`
}

type propertyTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type taxonomyResponse struct {
	Amenities     []string             `json:"amenities"`
	PropertyTypes []propertyTypeOption `json:"propertyTypes"`
}

type inquiryListingPayload struct {
	Title        string  `json:"title"`
	PropertyType string  `json:"propertyType"`
	PriceType    string  `json:"priceType"`
	Price        float64 `json:"price"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	SquareFeet   int     `json:"squareFeet"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
}

type inquiryRequest struct {
	Kind       string                 `json:"kind"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	Subject    string                 `json:"subject"`
	Message    string                 `json:"message"`
	PropertyID string                 `json:"propertyId"`
	AgentID    string                 `json:"agentId"`
	Listing    *inquiryListingPayload `json:"listing"`
}

type inquiryCreatedResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Receipt   string    `json:"receipt"`
	CreatedAt time.Time `json:"createdAt"`
}

type inquiryStatusResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	PropertyID string    `json:"propertyId,omitempty"`
	AgentID    string    `json:"agentId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toPropertyResponse(p domain.Property) propertyResponse {
	return propertyResponse{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Price:             p.Price,
		PriceType:         p.PriceType.String(),
		PriceTypeLabel:    p.PriceType.Label(),
		FormattedPrice:    domain.FormatPrice(p.Price, p.PriceType),
		PropertyType:      p.PropertyType.String(),
		PropertyTypeLabel: p.PropertyType.Label(),
		Status:            p.Status.String(),
		Address:           p.Address,
		City:              p.City,
		State:             p.State,
		ZipCode:           p.ZipCode,
		Country:           p.Country,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Bedrooms:          p.Bedrooms,
		Bathrooms:         p.Bathrooms,
		SquareFeet:        p.SquareFeet,
		LotSize:           p.LotSize,
		YearBuilt:         p.YearBuilt,
		Parking:           p.Parking,
		Amenities:         nonNil(p.Amenities),
		Images:            nonNil(p.Images),
		CoverImage:        p.CoverImage(),
		VirtualTourURL:    p.VirtualTourURL,
		AgentID:           p.AgentID,
		IsFeatured:        p.IsFeatured,
		ListingDate:       p.ListingDate,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toPropertyResponses(properties []domain.Property) []propertyResponse {
	items := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		items = append(items, toPropertyResponse(p))
	}
	return items
}

func toDetailResponse(detail catalogapp.ListingDetail) propertyDetailResponse {
	resp := propertyDetailResponse{
		Property: toPropertyResponse(detail.Property),
		Agent:    toAgentResponse(detail.Agent),
		Similar:  toPropertyResponses(detail.Similar),
		TimeZone: detail.TimeZone,
	}
	if perSqFt, ok := domain.PricePerSquareFoot(detail.Property); ok {
		resp.PricePerSquareFoot = &perSqFt
		resp.FormattedPricePerSqFt = domain.FormatPricePerSquareFoot(perSqFt)
	}
	return resp
}

func toAgentResponse(a domain.Agent) agentResponse {
	return agentResponse{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		Photo:           a.Photo,
		Bio:             a.Bio,
		License:         a.License,
		YearsExperience: a.YearsExperience,
		Specializations: nonNil(a.Specializations),
		Rating:          a.Rating,
		ReviewCount:     a.ReviewCount,
	}
}

func toInquiryStatusResponse(i inquirydomain.Inquiry) inquiryStatusResponse {
	return inquiryStatusResponse{
		ID:         i.ID,
		Kind:       string(i.Kind),
		Status:     string(i.Status),
		PropertyID: i.PropertyID,
		AgentID:    i.AgentID,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
