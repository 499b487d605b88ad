package domain

import "time"

// DeliveryStatus is the state of a notification that could not be delivered on submit.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryAbandoned DeliveryStatus = "abandoned"
)

// FailedNotification records a notifier that gave up on an inquiry so it can be retried later.
type FailedNotification struct {
	ID          string
	Target      string
	InquiryID   string
	Error       string
	Attempts    int
	Status      DeliveryStatus
	CreatedAt   time.Time
	LastTriedAt time.Time
}
