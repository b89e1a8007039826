package domain

import "time"

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a raw string onto one of the seven recognized order
// statuses. Unknown values fail with ErrInvalidStatus.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusAccepted, StatusRejected, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// IsTerminal reports whether no further transition may leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

// StatusLog represents a log entry for order status changes
type StatusLog struct {
	ID        int64
	OrderID   int64
	Status    Status
	ChangedBy string
	ChangedAt time.Time
}
