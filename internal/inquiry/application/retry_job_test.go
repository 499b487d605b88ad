package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenrealty/listings-api/internal/infrastructure/memory"
	"github.com/havenrealty/listings-api/internal/inquiry/application"
	"github.com/havenrealty/listings-api/internal/inquiry/domain"
)

func seedFailure(t *testing.T, failures *memory.FailedNotificationRepository, id, target, inquiryID string, attempts int) {
	t.Helper()
	require.NoError(t, failures.Create(context.Background(), &domain.FailedNotification{
		ID:        id,
		Target:    target,
		InquiryID: inquiryID,
		Attempts:  attempts,
		Status:    domain.DeliveryPending,
		CreatedAt: time.Now().UTC(),
	}))
}

func TestRetryJobRun(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInquiryRepository()
	failures := memory.NewFailedNotificationRepository()
	require.NoError(t, repo.Create(ctx, &domain.Inquiry{ID: "inq-1", Name: "Jane"}))

	healthy := &fakeNotifier{name: "mail"}
	broken := &fakeNotifier{name: "queue", failures: -1}

	seedFailure(t, failures, "f-sent", "mail", "inq-1", 3)
	seedFailure(t, failures, "f-exhausted", "queue", "inq-1", 4)
	seedFailure(t, failures, "f-again", "queue", "inq-1", 1)
	seedFailure(t, failures, "f-gone", "slack", "inq-1", 1)
	seedFailure(t, failures, "f-orphan", "mail", "inq-missing", 1)

	job := application.NewRetryJob(application.RetryConfig{
		Repository:  repo,
		Failures:    failures,
		Notifiers:   []application.Notifier{healthy, broken},
		Logger:      quietLogger(),
		MaxAttempts: 5,
	})
	require.NoError(t, job.Run(ctx))

	pending, err := failures.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "f-again", pending[0].ID)
	assert.Equal(t, 2, pending[0].Attempts)
	assert.NotEmpty(t, pending[0].Error)

	assert.Equal(t, []string{"inq-1"}, healthy.calls)
	assert.Len(t, broken.calls, 2)
}

func TestRetryJobSchedule(t *testing.T) {
	job := application.NewRetryJob(application.RetryConfig{
		Repository: memory.NewInquiryRepository(),
		Failures:   memory.NewFailedNotificationRepository(),
		Logger:     quietLogger(),
	})

	c, err := job.Schedule("@every 1h")
	require.NoError(t, err)
	c.Stop()

	_, err = job.Schedule("not a schedule")
	assert.Error(t, err)
}
