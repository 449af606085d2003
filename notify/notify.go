// Package notify publishes domain events such as new applications and
// captured payments.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event types
const (
	EventApplicationCreated = "application.created"
	EventPaymentCaptured    = "payment.captured"
)

// Event is one published domain event.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Data       map[string]any `json:"data"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType string, data map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Notifier delivers events. Delivery failures are reported to the caller
// but must never undo the action that produced the event.
type Notifier interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Ensure LogNotifier implements Notifier.
var _ Notifier = (*LogNotifier)(nil)

// LogNotifier writes events to the log. It is used when no broker is
// configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier returns a notifier that logs each event.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("events")}
}

// Publish logs the event and never fails.
func (n *LogNotifier) Publish(_ context.Context, e Event) error {
	n.logger.Info("event",
		zap.String("id", e.ID),
		zap.String("type", e.Type),
		zap.Time("occurred_at", e.OccurredAt),
		zap.Any("data", e.Data),
	)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
