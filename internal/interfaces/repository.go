package interfaces

import (
	"context"
	"time"

	"github.com/demobistro/ordering/internal/domain"
)

// OrderRepository persists order aggregates. Create writes the order, its
// lines and the initial status log entry in one transaction; readers return
// the assembled aggregate, never a partial one.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, status *domain.Status) ([]*domain.Order, error)
	// UpdateStatus writes the new status only if updated_at still equals
	// expectedUpdatedAt, guarding against a concurrent read-modify-write.
	// Fails with domain.ErrConcurrentUpdate on a stale read and
	// domain.ErrOrderNotFound if the order does not exist.
	UpdateStatus(ctx context.Context, id int64, status domain.Status, expectedUpdatedAt time.Time) (*domain.Order, error)
	GetStatusHistory(ctx context.Context, orderID int64) ([]*domain.StatusLog, error)
}

// MenuRepository reads the catalog. GetVisibleItemsByIDs resolves all ids in
// a single statement so every line of an order prices against one consistent
// catalog snapshot; unknown or invisible ids are simply omitted.
type MenuRepository interface {
	ListCategories(ctx context.Context, withItems bool) ([]*domain.MenuCategory, error)
	ListItems(ctx context.Context, categoryID *int64, search string) ([]*domain.MenuItem, error)
	GetItemByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	GetVisibleItemsByIDs(ctx context.Context, ids []int64) ([]*domain.MenuItem, error)
}

type BusinessRepository interface {
	Get(ctx context.Context) (*domain.BusinessInfo, error)
	Upsert(ctx context.Context, info *domain.BusinessInfo) error
}

// MenuCache caches serialized catalog payloads with a TTL. A miss or a cache
// failure degrades to the repository.
type MenuCache interface {
	GetCategories(ctx context.Context) ([]byte, error)
	SetCategories(ctx context.Context, payload []byte) error
}
