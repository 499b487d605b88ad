package domain

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which site form produced an inquiry.
type Kind string

const (
	KindProperty Kind = "property"
	KindGeneral  Kind = "general"
	KindListing  Kind = "listing"
)

func NewKind(value string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(value))); k {
	case KindProperty, KindGeneral, KindListing:
		return k, nil
	case "":
		return KindProperty, nil
	default:
		return "", fmt.Errorf("invalid inquiry kind: %q", value)
	}
}

// Status tracks how far the office has followed an inquiry up.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusClosed    Status = "closed"
)

// Inquiry is a message left through one of the site's forms.
type Inquiry struct {
	ID         string
	Kind       Kind
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	PropertyID string
	AgentID    string
	Listing    *ListingProposal
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ListingProposal carries the details an owner submits when asking the brokerage to list their property.
type ListingProposal struct {
	Title        string
	PropertyType string
	PriceType    string
	Price        float64
	Bedrooms     int
	Bathrooms    float64
	SquareFeet   int
	Address      string
	City         string
	State        string
	ZipCode      string
}

// Summary is a one-line description used in notifications and logs.
func (i Inquiry) Summary() string {
	switch i.Kind {
	case KindProperty:
		return fmt.Sprintf("%s asked about listing %s", i.Name, i.PropertyID)
	case KindListing:
		if i.Listing != nil {
			return fmt.Sprintf("%s wants to list %s, %s", i.Name, i.Listing.Address, i.Listing.City)
		}
		return fmt.Sprintf("%s wants to list a property", i.Name)
	default:
		if i.Subject != "" {
			return fmt.Sprintf("%s: %s", i.Name, i.Subject)
		}
		return fmt.Sprintf("%s sent a message", i.Name)
	}
}
