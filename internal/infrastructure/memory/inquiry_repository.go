// Package memory keeps inquiries in process memory when no database is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	inquiryapp "github.com/havenrealty/listings-api/internal/inquiry/application"
	"github.com/havenrealty/listings-api/internal/inquiry/domain"
)

// InquiryRepository implements inquiryapp.Repository.
type InquiryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Inquiry
}

var _ inquiryapp.Repository = (*InquiryRepository)(nil)

func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{items: make(map[string]domain.Inquiry)}
}

func (r *InquiryRepository) Create(_ context.Context, inquiry *domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[inquiry.ID]; exists {
		return fmt.Errorf("inquiry %q already exists", inquiry.ID)
	}
	r.items[inquiry.ID] = copyInquiry(*inquiry)
	return nil
}

func (r *InquiryRepository) FindByID(_ context.Context, id string) (*domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inquiry, ok := r.items[id]
	if !ok {
		return nil, inquiryapp.ErrNotFound
	}
	out := copyInquiry(inquiry)
	return &out, nil
}

// FailedNotificationRepository implements inquiryapp.FailedNotificationRepository.
type FailedNotificationRepository struct {
	mu    sync.Mutex
	items map[string]domain.FailedNotification
}

var _ inquiryapp.FailedNotificationRepository = (*FailedNotificationRepository)(nil)

func NewFailedNotificationRepository() *FailedNotificationRepository {
	return &FailedNotificationRepository{items: make(map[string]domain.FailedNotification)}
}

func (r *FailedNotificationRepository) Create(_ context.Context, failure *domain.FailedNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[failure.ID] = *failure
	return nil
}

// ListPending returns pending failures, oldest first.
func (r *FailedNotificationRepository) ListPending(_ context.Context, limit int) ([]domain.FailedNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.FailedNotification{}
	for _, f := range r.items {
		if f.Status == domain.DeliveryPending {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *FailedNotificationRepository) Update(_ context.Context, failure *domain.FailedNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[failure.ID]; !ok {
		return fmt.Errorf("failed notification %q: %w", failure.ID, inquiryapp.ErrNotFound)
	}
	r.items[failure.ID] = *failure
	return nil
}

func copyInquiry(in domain.Inquiry) domain.Inquiry {
	if in.Listing != nil {
		listing := *in.Listing
		in.Listing = &listing
	}
	return in
}
