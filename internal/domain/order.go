package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CancellationGracePeriod is the window after creation during which a
// customer may still cancel an order that has already left the "new" status.
const CancellationGracePeriod = 5 * time.Minute

// Order represents a customer order entity
type Order struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	Type            OrderType
	DeliveryAddress *string
	PaymentMethod   PaymentMethod
	Lines           []OrderLine
	Total           decimal.Decimal
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderLine is one menu item within an order. Price and name are frozen at
// order time and never re-derived from the live catalog.
type OrderLine struct {
	ID           int64
	OrderID      int64
	MenuItemID   int64
	Quantity     int
	PriceAtOrder decimal.Decimal
	NameAtOrder  string
}

// LineTotal returns price-at-order multiplied by quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.PriceAtOrder.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewOrder creates a new order with business rules applied. Lines must
// already carry their price/name snapshots; the total is computed here, once.
func NewOrder(customerName, customerPhone string, customerEmail *string, orderType OrderType,
	deliveryAddress *string, paymentMethod PaymentMethod, lines []OrderLine) (*Order, error) {

	now := time.Now().UTC()
	order := &Order{
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		CustomerEmail:   customerEmail,
		Type:            orderType,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   paymentMethod,
		Lines:           lines,
		Status:          StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if order.PaymentMethod == "" {
		order.PaymentMethod = PaymentMethodCash
	}
	if order.Type != OrderTypeDelivery {
		order.DeliveryAddress = nil
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	order.Total = CalculateTotal(lines)

	return order, nil
}

// Validate applies business validation rules
func (o *Order) Validate() error {
	if strings.TrimSpace(o.CustomerName) == "" {
		return &ValidationError{Field: "customer_name", Message: "customer name is required"}
	}
	if len(o.CustomerName) > 100 {
		return &ValidationError{Field: "customer_name", Message: "customer name must not exceed 100 characters"}
	}
	if strings.TrimSpace(o.CustomerPhone) == "" {
		return &ValidationError{Field: "customer_phone", Message: "customer phone is required"}
	}

	if o.Type != OrderTypeDelivery && o.Type != OrderTypePickup {
		return &ValidationError{Field: "order_type", Message: "order type must be one of: delivery, pickup"}
	}

	if o.Type == OrderTypeDelivery && (o.DeliveryAddress == nil || strings.TrimSpace(*o.DeliveryAddress) == "") {
		return &ValidationError{Field: "delivery_address", Message: "delivery address is required for delivery orders"}
	}

	if o.PaymentMethod != PaymentMethodCash && o.PaymentMethod != PaymentMethodCard {
		return &ValidationError{Field: "payment_method", Message: "payment method must be one of: cash, card"}
	}

	if len(o.Lines) < 1 {
		return &ValidationError{Field: "items", Message: "order must contain at least 1 item"}
	}

	return nil
}

// CalculateTotal sums price-at-order times quantity across lines.
func CalculateTotal(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// CanTransitionTo checks if the order can transition to the new status
// through the generic status-update path. Cancelled appears in no allowed
// set: it is reachable only through the cancellation path.
func (o *Order) CanTransitionTo(newStatus Status) bool {
	validTransitions := map[Status][]Status{
		StatusNew:       {StatusAccepted, StatusRejected},
		StatusAccepted:  {StatusPreparing},
		StatusPreparing: {StatusReady},
		StatusReady:     {StatusCompleted},
		StatusRejected:  {},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	allowed := validTransitions[o.Status]
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// Cancellable reports whether the order may still be cancelled at the given
// time. Orders that never left "new" may be cancelled at any age; anything
// further along only within the grace period.
func (o *Order) Cancellable(now time.Time) bool {
	if o.Status == StatusNew {
		return true
	}
	return now.Sub(o.CreatedAt) < CancellationGracePeriod
}
