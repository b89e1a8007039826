package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/jackc/pgx/v5"
)

type menuRepository struct {
	db DB
}

func NewMenuRepository(db DB) interfaces.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ListCategories(ctx context.Context, withItems bool) ([]*domain.MenuCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, sort_order
		FROM menu_categories
		ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.MenuCategory
	byID := make(map[int64]*domain.MenuCategory)
	for rows.Next() {
		var cat domain.MenuCategory
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Items = []domain.MenuItem{}
		categories = append(categories, &cat)
		byID[cat.ID] = &cat
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	if !withItems || len(categories) == 0 {
		return categories, nil
	}

	items, err := r.ListItems(ctx, nil, "")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if cat, ok := byID[item.CategoryID]; ok {
			cat.Items = append(cat.Items, *item)
		}
	}

	return categories, nil
}

func (r *menuRepository) ListItems(ctx context.Context, categoryID *int64, search string) ([]*domain.MenuItem, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url, visible, sort_order, created_at
		FROM menu_items
		WHERE visible = true
	`
	args := []any{}
	if categoryID != nil {
		args = append(args, *categoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	query += ` ORDER BY sort_order ASC, id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *menuRepository) GetItemByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url, visible, sort_order, created_at
		FROM menu_items
		WHERE id = $1
	`

	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.CategoryID, &item.Name, &item.Description,
		&item.Price, &item.ImageURL, &item.Visible, &item.SortOrder, &item.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	return &item, nil
}

// GetVisibleItemsByIDs resolves all requested ids in one statement, which is
// what gives an order request its single consistent catalog snapshot.
// Unknown and invisible ids are omitted from the result.
func (r *menuRepository) GetVisibleItemsByIDs(ctx context.Context, ids []int64) ([]*domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, category_id, name, description, price, image_url, visible, sort_order, created_at
		FROM menu_items
		WHERE id = ANY($1) AND visible = true
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows Rows) ([]*domain.MenuItem, error) {
	var items []*domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID, &item.CategoryID, &item.Name, &item.Description,
			&item.Price, &item.ImageURL, &item.Visible, &item.SortOrder, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menu items: %w", err)
	}
	return items, nil
}
