package order

import (
	"context"
	"fmt"

	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/shopspring/decimal"
)

// PricingResolver resolves requested line items against the visible catalog
// and freezes each line's price and name. All-or-nothing: one bad line
// rejects the whole request. Read-only.
type PricingResolver struct {
	menu interfaces.MenuRepository
}

func NewPricingResolver(menu interfaces.MenuRepository) *PricingResolver {
	return &PricingResolver{menu: menu}
}

// Resolve prices every requested (menuItemId, quantity) pair and returns the
// snapshot lines plus the aggregate total. All ids are fetched in a single
// repository read so no two lines can observe different catalog states.
func (r *PricingResolver) Resolve(ctx context.Context, reqs []interfaces.OrderLineRequest) ([]domain.OrderLine, decimal.Decimal, error) {
	if len(reqs) == 0 {
		return nil, decimal.Zero, &domain.ValidationError{Field: "items", Message: "order must contain at least 1 item"}
	}

	ids := make([]int64, 0, len(reqs))
	seen := make(map[int64]bool, len(reqs))
	for _, req := range reqs {
		if req.Quantity < 1 {
			return nil, decimal.Zero, &domain.InvalidLineItemError{
				MenuItemID: req.MenuItemID,
				Reason:     "quantity must be at least 1",
			}
		}
		if !seen[req.MenuItemID] {
			seen[req.MenuItemID] = true
			ids = append(ids, req.MenuItemID)
		}
	}

	items, err := r.menu.GetVisibleItemsByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to resolve menu items: %w", err)
	}

	byID := make(map[int64]*domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	lines := make([]domain.OrderLine, 0, len(reqs))
	total := decimal.Zero
	for _, req := range reqs {
		item, ok := byID[req.MenuItemID]
		if !ok {
			return nil, decimal.Zero, &domain.InvalidLineItemError{
				MenuItemID: req.MenuItemID,
				Reason:     "menu item is invalid or unavailable",
			}
		}

		line := domain.OrderLine{
			MenuItemID:   item.ID,
			Quantity:     req.Quantity,
			PriceAtOrder: item.Price,
			NameAtOrder:  item.Name,
		}
		lines = append(lines, line)
		total = total.Add(line.LineTotal())
	}

	return lines, total, nil
}
