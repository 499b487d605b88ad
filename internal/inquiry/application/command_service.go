package application

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/havenrealty/listings-api/internal/inquiry/domain"
)

const (
	defaultNotifyAttempts = 3
	defaultNotifyDelay    = 200 * time.Millisecond
	defaultNotifyTimeout  = 2 * time.Second
	// persistTimeout bounds the write of a failed notification record.
	persistTimeout = 5 * time.Second
)

// Config wires the command service.
type Config struct {
	Repository     Repository
	Failures       FailedNotificationRepository
	Properties     PropertyLookup
	Notifiers      []Notifier
	Receipts       *ReceiptIssuer
	Logger         *logrus.Logger
	NotifyAttempts int
	NotifyDelay    time.Duration
	NotifyTimeout  time.Duration
}

type commandService struct {
	repo       Repository
	failures   FailedNotificationRepository
	properties PropertyLookup
	notifiers  []Notifier
	receipts   *ReceiptIssuer
	logger     *logrus.Logger
	validate   *validator.Validate
	attempts   int
	delay      time.Duration
	timeout    time.Duration
	now        func() time.Time
}

// NewCommandService creates the inquiry command service.
func NewCommandService(cfg Config) CommandService {
	attempts := cfg.NotifyAttempts
	if attempts < 1 {
		attempts = defaultNotifyAttempts
	}
	delay := cfg.NotifyDelay
	if delay < 0 {
		delay = defaultNotifyDelay
	}
	timeout := cfg.NotifyTimeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &commandService{
		repo:       cfg.Repository,
		failures:   cfg.Failures,
		properties: cfg.Properties,
		notifiers:  append([]Notifier(nil), cfg.Notifiers...),
		receipts:   cfg.Receipts,
		logger:     logger,
		validate:   newValidator(),
		attempts:   attempts,
		delay:      delay,
		timeout:    timeout,
		now:        time.Now,
	}
}

func (s *commandService) Submit(ctx context.Context, cmd SubmitCommand) (*SubmitResult, error) {
	kind, err := domain.NewKind(cmd.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	cmd = normalise(cmd, kind)

	if err := s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, describeValidation(err))
	}

	if kind == domain.KindProperty {
		property, ok := s.properties.PropertyByID(cmd.PropertyID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown property %q", ErrValidation, cmd.PropertyID)
		}
		switch {
		case cmd.AgentID == "":
			cmd.AgentID = property.AgentID
		case cmd.AgentID != property.AgentID:
			return nil, fmt.Errorf("%w: agent %q does not represent property %q", ErrValidation, cmd.AgentID, cmd.PropertyID)
		}
	}

	now := s.now().UTC()
	inquiry := &domain.Inquiry{
		ID:         uuid.NewString(),
		Kind:       kind,
		Name:       cmd.Name,
		Email:      cmd.Email,
		Phone:      cmd.Phone,
		Subject:    cmd.Subject,
		Message:    cmd.Message,
		PropertyID: cmd.PropertyID,
		AgentID:    cmd.AgentID,
		Status:     domain.StatusNew,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if cmd.Listing != nil {
		l := *cmd.Listing
		inquiry.Listing = &domain.ListingProposal{
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

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("store inquiry: %w", err)
	}

	s.dispatch(ctx, *inquiry)

	receipt, err := s.receipts.Issue(inquiry.ID)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{Inquiry: *inquiry, Receipt: receipt}, nil
}

func (s *commandService) Status(ctx context.Context, receipt string) (*domain.Inquiry, error) {
	id, err := s.receipts.Verify(strings.TrimSpace(receipt))
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// dispatch fans an inquiry out to every notifier. A notifier that keeps failing is
// recorded for the retry job; it never fails the submission.
// Delivery does not inherit the caller's deadline or cancellation, only its values.
func (s *commandService) dispatch(ctx context.Context, inquiry domain.Inquiry) {
	ctx = context.WithoutCancel(ctx)
	for _, n := range s.notifiers {
		err := s.notifyWithRetry(ctx, n, inquiry)
		if err == nil {
			continue
		}
		entry := s.logger.WithError(err).WithFields(logrus.Fields{
			"notifier": n.Name(),
			"inquiry":  inquiry.ID,
		})
		entry.Warn("inquiry notification failed")
		s.persistFailure(ctx, n.Name(), inquiry.ID, err)
	}
}

func (s *commandService) notifyWithRetry(ctx context.Context, n Notifier, inquiry domain.Inquiry) error {
	var lastErr error
	for i := 0; i < s.attempts; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		lastErr = n.Notify(attemptCtx, inquiry)
		cancel()
		if lastErr == nil {
			return nil
		}
		if i < s.attempts-1 && s.delay > 0 {
			select {
			case <-ctx.Done():
				return errors.Join(lastErr, ctx.Err())
			case <-time.After(s.delay):
			}
		}
	}
	return lastErr
}

func (s *commandService) persistFailure(ctx context.Context, target, inquiryID string, cause error) {
	if s.failures == nil {
		return
	}
	now := s.now().UTC()
	failure := &domain.FailedNotification{
		ID:          uuid.NewString(),
		Target:      target,
		InquiryID:   inquiryID,
		Error:       cause.Error(),
		Attempts:    s.attempts,
		Status:      domain.DeliveryPending,
		CreatedAt:   now,
		LastTriedAt: now,
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := s.failures.Create(ctx, failure); err != nil {
		s.logger.WithError(err).WithField("inquiry", inquiryID).Error("persist failed notification")
	}
}

func normalise(cmd SubmitCommand, kind domain.Kind) SubmitCommand {
	cmd.Kind = string(kind)
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	cmd.Subject = strings.TrimSpace(cmd.Subject)
	cmd.Message = strings.TrimSpace(cmd.Message)
	cmd.PropertyID = strings.TrimSpace(cmd.PropertyID)
	cmd.AgentID = strings.TrimSpace(cmd.AgentID)
	if kind != domain.KindProperty {
		cmd.PropertyID = ""
		cmd.AgentID = ""
	}
	if kind != domain.KindListing {
		cmd.Listing = nil
	}
	return cmd
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		parts = append(parts, fmt.Sprintf("%s failed %q", field, fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
