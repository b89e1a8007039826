package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/demobistro/ordering/internal/interfaces"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ordersExchange        = "orders_topic"
	notificationsExchange = "order_notifications"
)

type publisher struct {
	conn Connection
}

func NewPublisher(conn Connection) interfaces.EventPublisher {
	return &publisher{conn: conn}
}

func (p *publisher) PublishOrderCreated(ctx context.Context, msg interfaces.OrderCreatedMessage) error {
	routingKey := fmt.Sprintf("orders.created.%s", msg.OrderType)
	return p.publishTopic(routingKey, msg)
}

func (p *publisher) PublishStatusChanged(ctx context.Context, msg interfaces.StatusChangedMessage) error {
	routingKey := fmt.Sprintf("orders.status.%s", msg.NewStatus)
	if err := p.publishTopic(routingKey, msg); err != nil {
		return err
	}
	return p.publishFanout(msg)
}

func (p *publisher) publishTopic(routingKey string, payload any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.Publish(ordersExchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (p *publisher) publishFanout(payload any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(notificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.Publish(notificationsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
