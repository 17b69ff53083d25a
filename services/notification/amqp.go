package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AmqpBus publishes events to a RabbitMQ topic exchange. The routing key
// is "<recipientID>.<event>", so a consumer binds "<recipientID>.#" to
// receive everything addressed to that identity.
type AmqpBus struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAmqpBus(url, exchange string) (*AmqpBus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AmqpBus{conn: conn, ch: ch, exchange: exchange}, nil
}

func (b *AmqpBus) Publish(ctx context.Context, recipientID, event string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return b.ch.PublishWithContext(ctx, b.exchange, recipientID+"."+event, false, false, amqp.Publishing{
		ContentType: "application/json",
		Type:        event,
		Body:        body,
	})
}

func (b *AmqpBus) Close() error {
	if b.ch != nil {
		_ = b.ch.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
