package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
)

// Ensure AMQPNotifier implements Notifier.
var _ Notifier = (*AMQPNotifier)(nil)

// AMQPNotifier publishes events to a topic exchange, routed by event type.
// A connection dropped by the broker is redialed on the next Publish.
type AMQPNotifier struct {
	mu       sync.Mutex
	url      string
	exchange string
	dial     func(url string) (*amqp.Connection, error)
	conn     *amqp.Connection
}

// NewAMQPNotifier dials the broker and declares the exchange.
func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	n := &AMQPNotifier{url: url, exchange: exchange, dial: amqp.Dial}
	if _, err := n.connection(); err != nil {
		return nil, err
	}
	return n, nil
}

// connection returns the live connection, dialing and declaring the
// exchange again when there is none. Callers hold n.mu.
func (n *AMQPNotifier) connection() (*amqp.Connection, error) {
	if n.conn != nil && !n.conn.IsClosed() {
		return n.conn, nil
	}

	conn, err := n.dial(n.url)
	if err != nil {
		return nil, fmt.Errorf("connecting to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(n.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declaring exchange %s: %w", n.exchange, err)
	}

	n.conn = conn
	return conn, nil
}

// Publish sends e as a persistent JSON message with routing key e.Type.
func (n *AMQPNotifier) Publish(_ context.Context, e Event) error {
	body, err := Encode(e)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	conn, err := n.connection()
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	return ch.Publish(
		n.exchange,
		e.Type,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ID,
			Timestamp:    e.OccurredAt,
			Type:         e.Type,
			Body:         body,
		},
	)
}

// Close closes the broker connection.
func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conn == nil || n.conn.IsClosed() {
		return nil
	}
	return n.conn.Close()
}

// Encode renders the wire form of an event.
func Encode(e Event) ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding event %s: %w", e.Type, err)
	}
	return body, nil
}
