package interfaces

import (
	"context"

	"github.com/demobistro/ordering/internal/domain"
)

type OrderService interface {
	Create(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, statusFilter string) ([]*domain.Order, error)
	SetStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	Cancel(ctx context.Context, id int64) (*domain.Order, error)
	History(ctx context.Context, id int64) ([]*domain.StatusLog, error)
}

type MenuService interface {
	ListCategories(ctx context.Context) ([]*domain.MenuCategory, error)
	ListItems(ctx context.Context, categoryID *int64, search string) ([]*domain.MenuItem, error)
	GetItem(ctx context.Context, id int64) (*domain.MenuItem, error)
}

type BusinessService interface {
	Get(ctx context.Context) (*domain.BusinessInfo, error)
	Update(ctx context.Context, cmd UpdateBusinessCommand) (*domain.BusinessInfo, error)
}

// CreateOrderCommand carries a raw new-order request into the engine.
type CreateOrderCommand struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	OrderType       string
	DeliveryAddress *string
	PaymentMethod   string
	Lines           []OrderLineRequest
}

type OrderLineRequest struct {
	MenuItemID int64
	Quantity   int
}

type UpdateBusinessCommand struct {
	Name    string
	Address string
	Phone   string
	Hours   string
	LogoURL *string
}
