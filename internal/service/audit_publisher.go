// Package service holds side integrations of the console that are not part
// of the modal flow itself.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/car-rental-admin/internal/queue"
)

// Auditor records that an admin saved a record.  Implementations must not
// fail the caller: errors are logged, never returned.
type Auditor interface {
	RecordChanged(ctx context.Context, ev queue.RecordChangedEvent)
}

// NopAuditor is used when auditing is disabled.
type NopAuditor struct{}

func (NopAuditor) RecordChanged(context.Context, queue.RecordChangedEvent) {}

// AuditPublisher publishes RecordChangedEvents to RabbitMQ as persistent JSON
// messages.  The connection is dialed on first use and re-dialed after a
// failed publish.
type AuditPublisher struct {
	url     string
	log     *slog.Logger
	timeout time.Duration

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAuditPublisher(url string, log *slog.Logger) *AuditPublisher {
	return &AuditPublisher{url: url, log: log, timeout: 2 * time.Second}
}

// RecordChanged stamps ChangedAt when empty and publishes the event.
func (p *AuditPublisher) RecordChanged(ctx context.Context, ev queue.RecordChangedEvent) {
	if ev.ChangedAt == "" {
		ev.ChangedAt = time.Now().UTC().Format(time.RFC3339)
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()
	if err := p.publish(ctx, ev); err != nil {
		p.log.WarnContext(ctx, "audit publish failed", "entity", ev.Entity, "record_id", ev.RecordID, "error", err)
	}
}

func (p *AuditPublisher) publish(ctx context.Context, ev queue.RecordChangedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ensureChannel(); err != nil {
		return err
	}
	err = p.ch.PublishWithContext(ctx, "", queue.AuditQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.resetLocked()
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// ensureChannel dials and declares the queue when no usable channel exists.
// Dialing and the AMQP handshake are bounded by p.timeout.  Callers hold p.mu.
func (p *AuditPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.resetLocked()
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.timeout),
	})
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("channel open: %w", err)
	}
	if _, err := ch.QueueDeclare(queue.AuditQueueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("queue declare: %w", err)
	}
	p.conn, p.ch = conn, ch
	return nil
}

func (p *AuditPublisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

// Close releases the broker connection.
func (p *AuditPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
}
