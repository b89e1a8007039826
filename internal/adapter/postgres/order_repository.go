package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/jackc/pgx/v5"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (customer_name, customer_phone, customer_email, type, delivery_address,
		                    payment_method, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query,
		order.CustomerName, order.CustomerPhone, order.CustomerEmail, order.Type, order.DeliveryAddress,
		order.PaymentMethod, order.Total, order.Status, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Lines {
		lineQuery := `
			INSERT INTO order_lines (order_id, menu_item_id, quantity, price_at_order, name_at_order)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err = tx.QueryRow(ctx, lineQuery,
			order.ID, order.Lines[i].MenuItemID, order.Lines[i].Quantity,
			order.Lines[i].PriceAtOrder, order.Lines[i].NameAtOrder,
		).Scan(&order.Lines[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
		order.Lines[i].OrderID = order.ID
	}

	logQuery := `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.Exec(ctx, logQuery, order.ID, order.Status, "order-service", order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, customer_name, customer_phone, customer_email, type, delivery_address,
		       payment_method, total, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.CustomerName, &order.CustomerPhone, &order.CustomerEmail,
		&order.Type, &order.DeliveryAddress, &order.PaymentMethod, &order.Total,
		&order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	lines, err := r.loadLines(ctx, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Lines = lines[order.ID]

	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, status *domain.Status) ([]*domain.Order, error) {
	query := `
		SELECT id, customer_name, customer_phone, customer_email, type, delivery_address,
		       payment_method, total, status, created_at, updated_at
		FROM orders
	`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	var ids []int64
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.CustomerName, &order.CustomerPhone, &order.CustomerEmail,
			&order.Type, &order.DeliveryAddress, &order.PaymentMethod, &order.Total,
			&order.Status, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		order.Lines = lines[order.ID]
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status, expectedUpdatedAt time.Time) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1 AND updated_at = $4
	`
	tag, err := tx.Exec(ctx, query, id, status, now, expectedUpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check order existence: %w", err)
		}
		if !exists {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.ErrConcurrentUpdate
	}

	logQuery := `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, logQuery, id, status, "order-service", now); err != nil {
		return nil, fmt.Errorf("failed to log status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *orderRepository) GetStatusHistory(ctx context.Context, orderID int64) ([]*domain.StatusLog, error) {
	query := `
		SELECT id, order_id, status, changed_by, changed_at
		FROM order_status_log
		WHERE order_id = $1
		ORDER BY changed_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	var logs []*domain.StatusLog
	for rows.Next() {
		var log domain.StatusLog
		if err := rows.Scan(&log.ID, &log.OrderID, &log.Status, &log.ChangedBy, &log.ChangedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status log: %w", err)
		}
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status history: %w", err)
	}

	return logs, nil
}

// loadLines fetches the lines for a set of orders in one query and groups
// them by order id.
func (r *orderRepository) loadLines(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderLine, error) {
	query := `
		SELECT id, order_id, menu_item_id, quantity, price_at_order, name_at_order
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load order lines: %w", err)
	}
	defer rows.Close()

	lines := make(map[int64][]domain.OrderLine)
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.MenuItemID,
			&line.Quantity, &line.PriceAtOrder, &line.NameAtOrder); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines[line.OrderID] = append(lines[line.OrderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order lines: %w", err)
	}

	return lines, nil
}
