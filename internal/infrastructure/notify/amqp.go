package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/havenrealty/listings-api/internal/inquiry/domain"
)

const defaultInquiryQueue = "inquiries_queue"

type publisherChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// inquiryEvent is the message the CRM consumes.
type inquiryEvent struct {
	Action     string    `json:"action"`
	InquiryID  string    `json:"inquiryId"`
	Kind       string    `json:"kind"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	PropertyID string    `json:"propertyId,omitempty"`
	AgentID    string    `json:"agentId,omitempty"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AMQPPublisher publishes an inquiry.created event to a durable queue.
// A publish on a closed channel redials the broker once before failing.
type AMQPPublisher struct {
	mu      sync.Mutex
	conn    io.Closer
	channel publisherChannel
	queue   string
	logger  *logrus.Logger
	dial    func() (publisherChannel, io.Closer, error)
}

// NewAMQPPublisher dials the broker and declares the queue.
func NewAMQPPublisher(url, queue string, logger *logrus.Logger) (*AMQPPublisher, error) {
	if queue == "" {
		queue = defaultInquiryQueue
	}

	dial := func() (publisherChannel, io.Closer, error) {
		return dialQueue(url, queue)
	}
	ch, conn, err := dial()
	if err != nil {
		return nil, err
	}

	logger.WithField("queue", queue).Info("inquiry events published to RabbitMQ")
	p := newAMQPPublisher(ch, queue, logger)
	p.conn = conn
	p.dial = dial
	return p, nil
}

func dialQueue(url, queue string) (publisherChannel, io.Closer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("failed to declare queue: %w", err)
	}
	return ch, conn, nil
}

func newAMQPPublisher(ch publisherChannel, queue string, logger *logrus.Logger) *AMQPPublisher {
	return &AMQPPublisher{channel: ch, queue: queue, logger: logger}
}

func (p *AMQPPublisher) Name() string {
	return "amqp"
}

func (p *AMQPPublisher) Notify(ctx context.Context, inquiry domain.Inquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(inquiryEvent{
		Action:     "inquiry.created",
		InquiryID:  inquiry.ID,
		Kind:       string(inquiry.Kind),
		Name:       inquiry.Name,
		Email:      inquiry.Email,
		Phone:      inquiry.Phone,
		PropertyID: inquiry.PropertyID,
		AgentID:    inquiry.AgentID,
		Summary:    inquiry.Summary(),
		CreatedAt:  inquiry.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal inquiry event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    inquiry.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish("", p.queue, false, false, msg)
	if !errors.Is(err, amqp.ErrClosed) || p.dial == nil {
		return err
	}

	p.logger.WithField("queue", p.queue).Warn("RabbitMQ channel closed, reconnecting")
	if rerr := p.reconnect(); rerr != nil {
		return errors.Join(err, rerr)
	}
	return p.channel.Publish("", p.queue, false, false, msg)
}

// reconnect replaces the channel and connection. Callers hold p.mu.
func (p *AMQPPublisher) reconnect() error {
	ch, conn, err := p.dial()
	if err != nil {
		return err
	}
	_ = p.channel.Close()
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.channel = ch
	p.conn = conn
	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
