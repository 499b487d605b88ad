package application

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/havenrealty/listings-api/internal/inquiry/domain"
)

const (
	defaultRetryBatch       = 50
	defaultMaxRetryAttempts = 10
)

// RetryJob re-sends notifications that failed at submission time.
type RetryJob struct {
	repo        Repository
	failures    FailedNotificationRepository
	notifiers   map[string]Notifier
	logger      *logrus.Logger
	batch       int
	maxAttempts int
	timeout     time.Duration
	now         func() time.Time
}

// RetryConfig wires a RetryJob.
type RetryConfig struct {
	Repository  Repository
	Failures    FailedNotificationRepository
	Notifiers   []Notifier
	Logger      *logrus.Logger
	Batch       int
	MaxAttempts int
	Timeout     time.Duration
}

func NewRetryJob(cfg RetryConfig) *RetryJob {
	byName := make(map[string]Notifier, len(cfg.Notifiers))
	for _, n := range cfg.Notifiers {
		byName[n.Name()] = n
	}
	job := &RetryJob{
		repo:        cfg.Repository,
		failures:    cfg.Failures,
		notifiers:   byName,
		logger:      cfg.Logger,
		batch:       cfg.Batch,
		maxAttempts: cfg.MaxAttempts,
		timeout:     cfg.Timeout,
		now:         time.Now,
	}
	if job.logger == nil {
		job.logger = logrus.StandardLogger()
	}
	if job.batch <= 0 {
		job.batch = defaultRetryBatch
	}
	if job.maxAttempts <= 0 {
		job.maxAttempts = defaultMaxRetryAttempts
	}
	if job.timeout <= 0 {
		job.timeout = defaultNotifyTimeout
	}
	return job
}

// Run processes one batch of pending failures.
func (j *RetryJob) Run(ctx context.Context) error {
	pending, err := j.failures.ListPending(ctx, j.batch)
	if err != nil {
		return err
	}

	for i := range pending {
		failure := &pending[i]
		j.retry(ctx, failure)
		if err := j.failures.Update(ctx, failure); err != nil {
			j.logger.WithError(err).WithField("failure", failure.ID).Error("update failed notification")
		}
	}
	return nil
}

func (j *RetryJob) retry(ctx context.Context, failure *domain.FailedNotification) {
	failure.LastTriedAt = j.now().UTC()
	entry := j.logger.WithFields(logrus.Fields{
		"notifier": failure.Target,
		"inquiry":  failure.InquiryID,
	})

	notifier, ok := j.notifiers[failure.Target]
	if !ok {
		failure.Status = domain.DeliveryAbandoned
		failure.Error = "notifier is no longer configured"
		entry.Warn("abandoning notification for unknown notifier")
		return
	}

	inquiry, err := j.repo.FindByID(ctx, failure.InquiryID)
	if errors.Is(err, ErrNotFound) {
		failure.Status = domain.DeliveryAbandoned
		failure.Error = err.Error()
		entry.Warn("abandoning notification for missing inquiry")
		return
	}
	if err != nil {
		entry.WithError(err).Warn("load inquiry for retry")
		return
	}

	notifyCtx, cancel := context.WithTimeout(ctx, j.timeout)
	err = notifier.Notify(notifyCtx, *inquiry)
	cancel()

	failure.Attempts++
	if err == nil {
		failure.Status = domain.DeliverySent
		failure.Error = ""
		entry.Info("notification delivered on retry")
		return
	}

	failure.Error = err.Error()
	if failure.Attempts >= j.maxAttempts {
		failure.Status = domain.DeliveryAbandoned
		entry.WithError(err).Error("giving up on notification")
		return
	}
	entry.WithError(err).Warn("notification retry failed")
}

// Schedule registers the job on a new cron scheduler and starts it.
// The caller owns the returned scheduler and must Stop it.
func (j *RetryJob) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := j.Run(ctx); err != nil {
			j.logger.WithError(err).Error("notification retry run failed")
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
