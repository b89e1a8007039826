package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/adapter/metrics"
	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
)

const changedBy = "order-service"

// statusUpdateRetries bounds the optimistic-concurrency loop on status
// writes. Contention on a single order is rare; three attempts is plenty.
const statusUpdateRetries = 3

type Service struct {
	repo      interfaces.OrderRepository
	resolver  *PricingResolver
	publisher interfaces.EventPublisher
	metrics   *metrics.OrderMetrics
	logger    logger.Logger
	now       func() time.Time
}

func NewService(repo interfaces.OrderRepository, resolver *PricingResolver,
	publisher interfaces.EventPublisher, m *metrics.OrderMetrics, lgr logger.Logger) *Service {
	return &Service{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		metrics:   m,
		logger:    lgr,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Create(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	lines, _, err := s.resolver.Resolve(ctx, cmd.Lines)
	if err != nil {
		if domain.IsClientError(err) {
			s.logger.Debug("line_items_rejected", "Order line items rejected", "", map[string]interface{}{
				"reason": err.Error(),
			})
		}
		return nil, err
	}

	order, err := domain.NewOrder(cmd.CustomerName, cmd.CustomerPhone, cmd.CustomerEmail,
		domain.OrderType(cmd.OrderType), cmd.DeliveryAddress, domain.PaymentMethod(cmd.PaymentMethod), lines)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to create order", "", nil, err)
		return nil, err
	}

	s.logger.Info("order_created", "Order created", "", map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total.String(),
		"lines":    len(order.Lines),
	})
	if s.metrics != nil {
		s.metrics.Created.WithLabelValues(string(order.Type)).Inc()
	}

	// The order is durable at this point; event delivery is best effort.
	s.publishCreated(ctx, order)

	return order, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, statusFilter string) ([]*domain.Order, error) {
	var filter *domain.Status
	if statusFilter != "" {
		status, err := domain.ParseStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		filter = &status
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	target, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < statusUpdateRetries; attempt++ {
		order, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if !order.CanTransitionTo(target) {
			return nil, fmt.Errorf("cannot move order %d from %s to %s: %w",
				id, order.Status, target, domain.ErrInvalidTransition)
		}

		updated, err := s.repo.UpdateStatus(ctx, id, target, order.UpdatedAt)
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info("status_changed", "Order status changed", "", map[string]interface{}{
			"order_id":   id,
			"old_status": string(order.Status),
			"new_status": string(target),
		})
		if s.metrics != nil {
			s.metrics.StatusChanged.WithLabelValues(string(target)).Inc()
		}
		s.publishStatusChanged(ctx, id, order.Status, target)

		return updated, nil
	}

	return nil, domain.ErrConcurrentUpdate
}

// Cancel moves the order to cancelled, the only path by which that status is
// reachable. Always allowed while the order is still new; otherwise only
// within the grace period. Cancelling an already-cancelled order succeeds
// without a write.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Order, error) {
	for attempt := 0; attempt < statusUpdateRetries; attempt++ {
		order, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if order.Status == domain.StatusCancelled {
			return order, nil
		}

		if !order.Cancellable(s.now()) {
			return nil, domain.ErrGracePeriodExpired
		}

		updated, err := s.repo.UpdateStatus(ctx, id, domain.StatusCancelled, order.UpdatedAt)
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info("order_cancelled", "Order cancelled", "", map[string]interface{}{
			"order_id":   id,
			"old_status": string(order.Status),
		})
		if s.metrics != nil {
			s.metrics.Cancelled.Inc()
		}
		s.publishStatusChanged(ctx, id, order.Status, domain.StatusCancelled)

		return updated, nil
	}

	return nil, domain.ErrConcurrentUpdate
}

func (s *Service) History(ctx context.Context, id int64) ([]*domain.StatusLog, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetStatusHistory(ctx, id)
}

func (s *Service) publishCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	msg := interfaces.OrderCreatedMessage{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		OrderType:     order.Type,
		PaymentMethod: order.PaymentMethod,
		Total:         order.Total.String(),
		LineCount:     len(order.Lines),
		CreatedAt:     order.CreatedAt,
	}
	if err := s.publisher.PublishOrderCreated(ctx, msg); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order created event", "", map[string]interface{}{
			"order_id": order.ID,
		}, err)
	}
}

func (s *Service) publishStatusChanged(ctx context.Context, id int64, oldStatus, newStatus domain.Status) {
	if s.publisher == nil {
		return
	}
	msg := interfaces.StatusChangedMessage{
		OrderID:   id,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy,
		Timestamp: s.now(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, msg); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish status changed event", "", map[string]interface{}{
			"order_id": id,
		}, err)
	}
}
