// Package events publishes booking and payment lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const envelopeVersion = 1

// Envelope is the wire format of every published event.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id"`
	Payload       json.RawMessage `json:"payload"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher буферизует события и пишет их в Kafka из одной горутины.
// При переполнении буфера событие теряется с предупреждением в логе.
type Publisher struct {
	w        messageWriter
	producer string
	logger   logger.Logger

	mu     sync.RWMutex
	closed bool
	inbox  chan kafka.Message
	done   chan struct{}
}

func NewPublisher(brokers []string, topic, producer string, buf int, log logger.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				log.Error("kafka write failed",
					logger.Int("messages", len(msgs)),
					logger.String("error", err.Error()),
				)
			}
		},
	}
	return newPublisher(w, producer, buf, log)
}

func newPublisher(w messageWriter, producer string, buf int, log logger.Logger) *Publisher {
	return &Publisher{
		w:        w,
		producer: producer,
		logger:   log,
		inbox:    make(chan kafka.Message, buf),
		done:     make(chan struct{}),
	}
}

// Start drains the inbox until Close is called or ctx is done.
func (p *Publisher) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		for m := range p.inbox {
			if err := p.w.WriteMessages(context.Background(), m); err != nil {
				p.logger.Error("publish event failed",
					logger.String("key", string(m.Key)),
					logger.String("error", err.Error()),
				)
			}
		}
		if err := p.w.Close(); err != nil {
			p.logger.Warn("close kafka writer", logger.String("error", err.Error()))
		}
	}()

	go func() {
		<-ctx.Done()
		p.Close()
	}()
}

// Notify implements ports.Notifier.
func (p *Publisher) Notify(_ context.Context, n domain.Notification) {
	msg, err := p.message(n)
	if err != nil {
		p.logger.Error("encode event", logger.String("error", err.Error()))
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}

	select {
	case p.inbox <- msg:
	default:
		p.logger.Warn("event dropped, publisher buffer full",
			logger.String("event_type", string(n.Kind)),
			logger.String("booking_id", n.BookingID),
		)
	}
}

// Close flushes buffered events and waits for the writer to finish.
// Safe to call more than once.
func (p *Publisher) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.inbox)
	}
	p.mu.Unlock()

	<-p.done
}

func (p *Publisher) message(n domain.Notification) (kafka.Message, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return kafka.Message{}, err
	}

	env := Envelope{
		EventID:       uuid.New().String(),
		EventType:     string(n.Kind),
		EventVersion:  envelopeVersion,
		OccurredAt:    n.OccurredAt,
		Producer:      p.producer,
		CorrelationID: n.BookingID,
		Payload:       payload,
	}
	value, err := json.Marshal(env)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(n.BookingID),
		Value: value,
		Time:  n.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.EventType)},
		},
	}, nil
}
