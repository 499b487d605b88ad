package mongo

import (
	"fmt"
	"time"

	catalogdomain "github.com/havenrealty/listings-api/internal/catalog/domain"
	inquirydomain "github.com/havenrealty/listings-api/internal/inquiry/domain"
)

// GeoPointDocument is a GeoJSON point; coordinates are [longitude, latitude].
type GeoPointDocument struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// PropertyDocument is the listing schema in MongoDB. Position preserves catalogue order.
type PropertyDocument struct {
	ID             string           `bson:"_id"`
	Position       int              `bson:"position"`
	Title          string           `bson:"title"`
	Description    string           `bson:"description"`
	Price          float64          `bson:"price"`
	PriceType      string           `bson:"priceType"`
	PropertyType   string           `bson:"propertyType"`
	Status         string           `bson:"status"`
	Address        string           `bson:"address"`
	City           string           `bson:"city"`
	State          string           `bson:"state"`
	ZipCode        string           `bson:"zipCode"`
	Country        string           `bson:"country"`
	Location       GeoPointDocument `bson:"location"`
	Bedrooms       int              `bson:"bedrooms"`
	Bathrooms      float64          `bson:"bathrooms"`
	SquareFeet     int              `bson:"squareFeet"`
	LotSize        *int             `bson:"lotSize,omitempty"`
	YearBuilt      int              `bson:"yearBuilt"`
	Parking        int              `bson:"parking"`
	Amenities      []string         `bson:"amenities"`
	Images         []string         `bson:"images"`
	VirtualTourURL string           `bson:"virtualTourUrl,omitempty"`
	AgentID        string           `bson:"agentId"`
	IsFeatured     bool             `bson:"isFeatured"`
	CreatedAt      time.Time        `bson:"createdAt"`
	UpdatedAt      time.Time        `bson:"updatedAt"`
	ListingDate    time.Time        `bson:"listingDate"`
}

// AgentDocument is the agent schema in MongoDB.
type AgentDocument struct {
	ID              string   `bson:"_id"`
	Position        int      `bson:"position"`
	Name            string   `bson:"name"`
	Email           string   `bson:"email"`
	Phone           string   `bson:"phone"`
	Photo           string   `bson:"photo"`
	Bio             string   `bson:"bio"`
	License         string   `bson:"license"`
	YearsExperience int      `bson:"yearsExperience"`
	Specializations []string `bson:"specializations"`
	Rating          float64  `bson:"rating"`
	ReviewCount     int      `bson:"reviewCount"`
}

// ListingProposalDocument is embedded in listing inquiries.
type ListingProposalDocument struct {
	Title        string  `bson:"title"`
	PropertyType string  `bson:"propertyType"`
	PriceType    string  `bson:"priceType"`
	Price        float64 `bson:"price"`
	Bedrooms     int     `bson:"bedrooms"`
	Bathrooms    float64 `bson:"bathrooms"`
	SquareFeet   int     `bson:"squareFeet"`
	Address      string  `bson:"address"`
	City         string  `bson:"city"`
	State        string  `bson:"state"`
	ZipCode      string  `bson:"zipCode"`
}

// InquiryDocument is the inquiry schema in MongoDB.
type InquiryDocument struct {
	ID         string                   `bson:"_id"`
	Kind       string                   `bson:"kind"`
	Name       string                   `bson:"name"`
	Email      string                   `bson:"email"`
	Phone      string                   `bson:"phone,omitempty"`
	Subject    string                   `bson:"subject,omitempty"`
	Message    string                   `bson:"message,omitempty"`
	PropertyID string                   `bson:"propertyId,omitempty"`
	AgentID    string                   `bson:"agentId,omitempty"`
	Listing    *ListingProposalDocument `bson:"listing,omitempty"`
	Status     string                   `bson:"status"`
	CreatedAt  time.Time                `bson:"createdAt"`
	UpdatedAt  time.Time                `bson:"updatedAt"`
}

// FailedNotificationDocument is a notification waiting for the retry job.
type FailedNotificationDocument struct {
	ID          string    `bson:"_id"`
	Target      string    `bson:"target"`
	InquiryID   string    `bson:"inquiryId"`
	Error       string    `bson:"error"`
	Attempts    int       `bson:"attempts"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"createdAt"`
	LastTriedAt time.Time `bson:"lastTriedAt"`
}

// NewPropertyDocument maps a listing to its stored form.
func NewPropertyDocument(p catalogdomain.Property, position int) PropertyDocument {
	return PropertyDocument{
		ID:             p.ID,
		Position:       position,
		Title:          p.Title,
		Description:    p.Description,
		Price:          p.Price,
		PriceType:      p.PriceType.String(),
		PropertyType:   p.PropertyType.String(),
		Status:         p.Status.String(),
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		ZipCode:        p.ZipCode,
		Country:        p.Country,
		Location:       GeoPointDocument{Type: "Point", Coordinates: []float64{p.Longitude, p.Latitude}},
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		SquareFeet:     p.SquareFeet,
		LotSize:        p.LotSize,
		YearBuilt:      p.YearBuilt,
		Parking:        p.Parking,
		Amenities:      append([]string{}, p.Amenities...),
		Images:         append([]string{}, p.Images...),
		VirtualTourURL: p.VirtualTourURL,
		AgentID:        p.AgentID,
		IsFeatured:     p.IsFeatured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		ListingDate:    p.ListingDate,
	}
}

// NewAgentDocument maps an agent to its stored form.
func NewAgentDocument(a catalogdomain.Agent, position int) AgentDocument {
	return AgentDocument{
		ID:              a.ID,
		Position:        position,
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		Photo:           a.Photo,
		Bio:             a.Bio,
		License:         a.License,
		YearsExperience: a.YearsExperience,
		Specializations: append([]string{}, a.Specializations...),
		Rating:          a.Rating,
		ReviewCount:     a.ReviewCount,
	}
}

func mapPropertyDocument(doc PropertyDocument) (catalogdomain.Property, error) {
	priceType, err := catalogdomain.NewPriceType(doc.PriceType)
	if err != nil {
		return catalogdomain.Property{}, fmt.Errorf("property %q: %w", doc.ID, err)
	}
	propertyType, err := catalogdomain.NewPropertyType(doc.PropertyType)
	if err != nil {
		return catalogdomain.Property{}, fmt.Errorf("property %q: %w", doc.ID, err)
	}
	status, err := catalogdomain.NewStatus(doc.Status)
	if err != nil {
		return catalogdomain.Property{}, fmt.Errorf("property %q: %w", doc.ID, err)
	}
	if len(doc.Location.Coordinates) != 2 {
		return catalogdomain.Property{}, fmt.Errorf("property %q: location must hold [lng, lat]", doc.ID)
	}

	return catalogdomain.Property{
		ID:             doc.ID,
		Title:          doc.Title,
		Description:    doc.Description,
		Price:          doc.Price,
		PriceType:      priceType,
		PropertyType:   propertyType,
		Status:         status,
		Address:        doc.Address,
		City:           doc.City,
		State:          doc.State,
		ZipCode:        doc.ZipCode,
		Country:        doc.Country,
		Longitude:      doc.Location.Coordinates[0],
		Latitude:       doc.Location.Coordinates[1],
		Bedrooms:       doc.Bedrooms,
		Bathrooms:      doc.Bathrooms,
		SquareFeet:     doc.SquareFeet,
		LotSize:        doc.LotSize,
		YearBuilt:      doc.YearBuilt,
		Parking:        doc.Parking,
		Amenities:      append([]string{}, doc.Amenities...),
		Images:         append([]string{}, doc.Images...),
		VirtualTourURL: doc.VirtualTourURL,
		AgentID:        doc.AgentID,
		IsFeatured:     doc.IsFeatured,
		CreatedAt:      doc.CreatedAt.UTC(),
		UpdatedAt:      doc.UpdatedAt.UTC(),
		ListingDate:    doc.ListingDate.UTC(),
	}, nil
}

func mapAgentDocument(doc AgentDocument) catalogdomain.Agent {
	return catalogdomain.Agent{
		ID:              doc.ID,
		Name:            doc.Name,
		Email:           doc.Email,
		Phone:           doc.Phone,
		Photo:           doc.Photo,
		Bio:             doc.Bio,
		License:         doc.License,
		YearsExperience: doc.YearsExperience,
		Specializations: append([]string{}, doc.Specializations...),
		Rating:          doc.Rating,
		ReviewCount:     doc.ReviewCount,
	}
}

func newInquiryDocument(i inquirydomain.Inquiry) InquiryDocument {
	doc := InquiryDocument{
		ID:         i.ID,
		Kind:       string(i.Kind),
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Subject:    i.Subject,
		Message:    i.Message,
		PropertyID: i.PropertyID,
		AgentID:    i.AgentID,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
	if l := i.Listing; l != nil {
		doc.Listing = &ListingProposalDocument{
			Title:        l.Title,
			PropertyType: l.PropertyType,
			PriceType:    l.PriceType,
			Price:        l.Price,
			Bedrooms:     l.Bedrooms,
			Bathrooms:    l.Bathrooms,
			SquareFeet:   l.SquareFeet,
			Address:      l.Address,
			City:         l.City,
			State:        l.State,
			ZipCode:      l.ZipCode,
		}
	}
	return doc
}

func mapInquiryDocument(doc InquiryDocument) inquirydomain.Inquiry {
	i := inquirydomain.Inquiry{
		ID:         doc.ID,
		Kind:       inquirydomain.Kind(doc.Kind),
		Name:       doc.Name,
		Email:      doc.Email,
		Phone:      doc.Phone,
		Subject:    doc.Subject,
		Message:    doc.Message,
		PropertyID: doc.PropertyID,
		AgentID:    doc.AgentID,
		Status:     inquirydomain.Status(doc.Status),
		CreatedAt:  doc.CreatedAt.UTC(),
		UpdatedAt:  doc.UpdatedAt.UTC(),
	}
	if l := doc.Listing; l != nil {
		i.Listing = &inquirydomain.ListingProposal{
			Title:        l.Title,
			PropertyType: l.PropertyType,
			PriceType:    l.PriceType,
			Price:        l.Price,
			Bedrooms:     l.Bedrooms,
			Bathrooms:    l.Bathrooms,
			SquareFeet:   l.SquareFeet,
			Address:      l.Address,
			City:         l.City,
			State:        l.State,
			ZipCode:      l.ZipCode,
		}
	}
	return i
}

func newFailedNotificationDocument(f inquirydomain.FailedNotification) FailedNotificationDocument {
	return FailedNotificationDocument{
		ID:          f.ID,
		Target:      f.Target,
		InquiryID:   f.InquiryID,
		Error:       f.Error,
		Attempts:    f.Attempts,
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt,
		LastTriedAt: f.LastTriedAt,
	}
}

func mapFailedNotificationDocument(doc FailedNotificationDocument) inquirydomain.FailedNotification {
	return inquirydomain.FailedNotification{
		ID:          doc.ID,
		Target:      doc.Target,
		InquiryID:   doc.InquiryID,
		Error:       doc.Error,
		Attempts:    doc.Attempts,
		Status:      inquirydomain.DeliveryStatus(doc.Status),
		CreatedAt:   doc.CreatedAt.UTC(),
		LastTriedAt: doc.LastTriedAt.UTC(),
	}
}
