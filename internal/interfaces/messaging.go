package interfaces

import (
	"context"
	"time"

	"github.com/demobistro/ordering/internal/domain"
)

// Back-of-house event messages. Customers observe status by polling the HTTP
// API; these feed kitchen dashboards and the notification subscriber.
type OrderCreatedMessage struct {
	OrderID       int64                `json:"order_id"`
	CustomerName  string               `json:"customer_name"`
	OrderType     domain.OrderType     `json:"order_type"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Total         string               `json:"total"`
	LineCount     int                  `json:"line_count"`
	CreatedAt     time.Time            `json:"created_at"`
}

type StatusChangedMessage struct {
	OrderID   int64         `json:"order_id"`
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
	ChangedBy string        `json:"changed_by"`
	Timestamp time.Time     `json:"timestamp"`
}

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, msg OrderCreatedMessage) error
	PublishStatusChanged(ctx context.Context, msg StatusChangedMessage) error
}

type MessageConsumer interface {
	ConsumeNotifications(ctx context.Context, handler NotificationHandler) error
}

type NotificationHandler func(ctx context.Context, body []byte) error
