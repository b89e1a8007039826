package order

import (
	"context"
	"sort"
	"time"

	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
)

type nopLogger struct{}

func (nopLogger) Info(string, string, string, map[string]interface{})         {}
func (nopLogger) Debug(string, string, string, map[string]interface{})        {}
func (nopLogger) Error(string, string, string, map[string]interface{}, error) {}

type fakeMenuRepo struct {
	items map[int64]*domain.MenuItem
	calls int
}

func (f *fakeMenuRepo) ListCategories(context.Context, bool) ([]*domain.MenuCategory, error) {
	return nil, nil
}

func (f *fakeMenuRepo) ListItems(context.Context, *int64, string) ([]*domain.MenuItem, error) {
	return nil, nil
}

func (f *fakeMenuRepo) GetItemByID(_ context.Context, id int64) (*domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeMenuRepo) GetVisibleItemsByIDs(_ context.Context, ids []int64) ([]*domain.MenuItem, error) {
	f.calls++
	var found []*domain.MenuItem
	for _, id := range ids {
		if item, ok := f.items[id]; ok && item.Visible {
			found = append(found, item)
		}
	}
	return found, nil
}

type fakeOrderRepo struct {
	orders        map[int64]*domain.Order
	history       map[int64][]*domain.StatusLog
	nextID        int64
	createCalls   int
	conflictTrips int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  make(map[int64]*domain.Order),
		history: make(map[int64][]*domain.StatusLog),
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	f.createCalls++
	f.nextID++
	order.ID = f.nextID
	for i := range order.Lines {
		order.Lines[i].ID = int64(i + 1)
		order.Lines[i].OrderID = order.ID
	}
	stored := *order
	stored.Lines = append([]domain.OrderLine(nil), order.Lines...)
	f.orders[order.ID] = &stored
	f.history[order.ID] = append(f.history[order.ID], &domain.StatusLog{
		OrderID: order.ID, Status: order.Status, ChangedBy: "order-service", ChangedAt: order.CreatedAt,
	})
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	copied.Lines = append([]domain.OrderLine(nil), order.Lines...)
	return &copied, nil
}

func (f *fakeOrderRepo) List(_ context.Context, status *domain.Status) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, order := range f.orders {
		if status != nil && order.Status != *status {
			continue
		}
		copied := *order
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.Status, expectedUpdatedAt time.Time) (*domain.Order, error) {
	if f.conflictTrips > 0 {
		f.conflictTrips--
		return nil, domain.ErrConcurrentUpdate
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if !order.UpdatedAt.Equal(expectedUpdatedAt) {
		return nil, domain.ErrConcurrentUpdate
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	f.history[id] = append(f.history[id], &domain.StatusLog{
		OrderID: id, Status: status, ChangedBy: "order-service", ChangedAt: order.UpdatedAt,
	})
	copied := *order
	copied.Lines = append([]domain.OrderLine(nil), order.Lines...)
	return &copied, nil
}

func (f *fakeOrderRepo) GetStatusHistory(_ context.Context, orderID int64) ([]*domain.StatusLog, error) {
	return f.history[orderID], nil
}

type fakePublisher struct {
	created       []interfaces.OrderCreatedMessage
	statusChanges []interfaces.StatusChangedMessage
	failWith      error
}

func (f *fakePublisher) PublishOrderCreated(_ context.Context, msg interfaces.OrderCreatedMessage) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.created = append(f.created, msg)
	return nil
}

func (f *fakePublisher) PublishStatusChanged(_ context.Context, msg interfaces.StatusChangedMessage) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.statusChanges = append(f.statusChanges, msg)
	return nil
}
