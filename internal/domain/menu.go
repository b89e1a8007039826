package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a purchasable catalog entry. The engine only reads items;
// visibility is controlled by the venue owner externally.
type MenuItem struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	Visible     bool
	SortOrder   int
	CreatedAt   time.Time
}

// MenuCategory groups menu items. Items hold the category id, not the
// reverse; Items is populated only when the caller asks for it.
type MenuCategory struct {
	ID        int64
	Name      string
	SortOrder int
	Items     []MenuItem
}
