package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrItemNotFound         = errors.New("menu item not found")
	ErrBusinessInfoNotFound = errors.New("business info not found")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrGracePeriodExpired   = errors.New("order cannot be cancelled after grace period")
	ErrConcurrentUpdate     = errors.New("order was modified concurrently")
)

// ValidationError reports a malformed or incomplete client request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidLineItemError rejects an entire order request because of a single
// bad line: an unknown or invisible menu item, or a non-positive quantity.
type InvalidLineItemError struct {
	MenuItemID int64
	Reason     string
}

func (e *InvalidLineItemError) Error() string {
	return fmt.Sprintf("invalid line item %d: %s", e.MenuItemID, e.Reason)
}

// IsClientError reports whether the error belongs to the closed set of
// caller-correctable kinds, as opposed to an infrastructure failure.
func IsClientError(err error) bool {
	var ve *ValidationError
	var le *InvalidLineItemError
	if errors.As(err, &ve) || errors.As(err, &le) {
		return true
	}
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrGracePeriodExpired)
}
