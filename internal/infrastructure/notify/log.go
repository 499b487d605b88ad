// Package notify delivers new inquiries to the brokerage's channels.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/havenrealty/listings-api/internal/inquiry/domain"
)

// LogNotifier writes every inquiry to the application log. It never fails.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Name() string {
	return "log"
}

func (n *LogNotifier) Notify(_ context.Context, inquiry domain.Inquiry) error {
	n.logger.WithFields(logrus.Fields{
		"inquiry":  inquiry.ID,
		"kind":     inquiry.Kind,
		"property": inquiry.PropertyID,
		"agent":    inquiry.AgentID,
	}).Info(inquiry.Summary())
	return nil
}
