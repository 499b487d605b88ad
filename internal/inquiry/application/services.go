package application

import (
	"context"
	"errors"

	catalogdomain "github.com/havenrealty/listings-api/internal/catalog/domain"
	"github.com/havenrealty/listings-api/internal/inquiry/domain"
)

var (
	// ErrNotFound is returned when an inquiry does not exist.
	ErrNotFound = errors.New("inquiry not found")
	// ErrValidation wraps every rejected submission.
	ErrValidation = errors.New("invalid inquiry")
	// ErrInvalidReceipt is returned for receipts that fail verification.
	ErrInvalidReceipt = errors.New("invalid receipt")
)

// Repository persists inquiries.
type Repository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	FindByID(ctx context.Context, id string) (*domain.Inquiry, error)
}

// FailedNotificationRepository keeps notifications that must be retried.
type FailedNotificationRepository interface {
	Create(ctx context.Context, failure *domain.FailedNotification) error
	ListPending(ctx context.Context, limit int) ([]domain.FailedNotification, error)
	Update(ctx context.Context, failure *domain.FailedNotification) error
}

// Notifier delivers a freshly submitted inquiry to one channel.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, inquiry domain.Inquiry) error
}

// PropertyLookup resolves the listing an inquiry is about.
type PropertyLookup interface {
	PropertyByID(id string) (catalogdomain.Property, bool)
}

// CommandService handles inquiry use-cases.
type CommandService interface {
	Submit(ctx context.Context, cmd SubmitCommand) (*SubmitResult, error)
	Status(ctx context.Context, receipt string) (*domain.Inquiry, error)
}

// SubmitCommand is the raw form input.
type SubmitCommand struct {
	Kind       string          `json:"kind" validate:"required,oneof=property general listing"`
	Name       string          `json:"name" validate:"required,max=120"`
	Email      string          `json:"email" validate:"required,email,max=254"`
	Phone      string          `json:"phone" validate:"omitempty,max=40"`
	Subject    string          `json:"subject" validate:"omitempty,max=200"`
	Message    string          `json:"message" validate:"required_unless=Kind listing,max=5000"`
	PropertyID string          `json:"propertyId" validate:"required_if=Kind property"`
	AgentID    string          `json:"agentId" validate:"omitempty,max=64"`
	Listing    *ListingCommand `json:"listing" validate:"required_if=Kind listing"`
}

// ListingCommand is the list-your-property form.
type ListingCommand struct {
	Title        string  `json:"title" validate:"required,max=200"`
	PropertyType string  `json:"propertyType" validate:"required,oneof=house apartment condo townhouse land commercial"`
	PriceType    string  `json:"priceType" validate:"required,oneof=sale rent"`
	Price        float64 `json:"price" validate:"gt=0"`
	Bedrooms     int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms    float64 `json:"bathrooms" validate:"gte=0"`
	SquareFeet   int     `json:"squareFeet" validate:"gt=0"`
	Address      string  `json:"address" validate:"required,max=200"`
	City         string  `json:"city" validate:"required,max=120"`
	State        string  `json:"state" validate:"required,max=120"`
	ZipCode      string  `json:"zipCode" validate:"required,max=20"`
}

// SubmitResult is returned to the visitor after a successful submission.
type SubmitResult struct {
	Inquiry domain.Inquiry
	Receipt string
}
