package menu

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/demobistro/ordering/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, string, string, map[string]interface{})         {}
func (nopLogger) Debug(string, string, string, map[string]interface{})        {}
func (nopLogger) Error(string, string, string, map[string]interface{}, error) {}

type fakeMenuRepo struct {
	categories    []*domain.MenuCategory
	items         []*domain.MenuItem
	categoryCalls int
}

func (f *fakeMenuRepo) ListCategories(context.Context, bool) ([]*domain.MenuCategory, error) {
	f.categoryCalls++
	return f.categories, nil
}

func (f *fakeMenuRepo) ListItems(_ context.Context, categoryID *int64, search string) ([]*domain.MenuItem, error) {
	var result []*domain.MenuItem
	for _, item := range f.items {
		if categoryID != nil && item.CategoryID != *categoryID {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (f *fakeMenuRepo) GetItemByID(_ context.Context, id int64) (*domain.MenuItem, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (f *fakeMenuRepo) GetVisibleItemsByIDs(context.Context, []int64) ([]*domain.MenuItem, error) {
	return nil, nil
}

type fakeCache struct {
	payload []byte
	failing bool
	sets    int
}

func (f *fakeCache) GetCategories(context.Context) ([]byte, error) {
	if f.failing {
		return nil, errors.New("cache down")
	}
	return f.payload, nil
}

func (f *fakeCache) SetCategories(_ context.Context, payload []byte) error {
	if f.failing {
		return errors.New("cache down")
	}
	f.payload = payload
	f.sets++
	return nil
}

func demoRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		categories: []*domain.MenuCategory{
			{ID: 1, Name: "Appetizers", SortOrder: 1, Items: []domain.MenuItem{
				{ID: 1, CategoryID: 1, Name: "Buffalo Wings", Price: decimal.RequireFromString("12.99"), Visible: true},
			}},
		},
		items: []*domain.MenuItem{
			{ID: 1, CategoryID: 1, Name: "Buffalo Wings", Price: decimal.RequireFromString("12.99"), Visible: true},
			{ID: 2, CategoryID: 2, Name: "Coffee", Price: decimal.RequireFromString("2.99"), Visible: true},
		},
	}
}

func TestListCategories_PopulatesCacheOnMiss(t *testing.T) {
	repo := demoRepo()
	cache := &fakeCache{}
	svc := NewService(repo, cache, nopLogger{})

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 1, repo.categoryCalls)
	assert.Equal(t, 1, cache.sets)

	// Second read is served from the cache.
	categories, err = svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Appetizers", categories[0].Name)
	assert.Equal(t, 1, repo.categoryCalls)
}

func TestListCategories_CacheFailureFallsBack(t *testing.T) {
	repo := demoRepo()
	svc := NewService(repo, &fakeCache{failing: true}, nopLogger{})

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 1, repo.categoryCalls)
}

func TestListCategories_CorruptCachePayload(t *testing.T) {
	repo := demoRepo()
	cache := &fakeCache{payload: []byte("{not json")}
	svc := NewService(repo, cache, nopLogger{})

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 1, repo.categoryCalls, "corrupt payload falls through to the repository")
}

func TestListCategories_NoCacheConfigured(t *testing.T) {
	repo := demoRepo()
	svc := NewService(repo, nil, nopLogger{})

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
}

func TestListCategories_CachedPayloadRoundTrips(t *testing.T) {
	repo := demoRepo()
	cache := &fakeCache{}
	svc := NewService(repo, cache, nopLogger{})

	_, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	var cached []*domain.MenuCategory
	require.NoError(t, json.Unmarshal(cache.payload, &cached))
	require.Len(t, cached, 1)
	assert.Len(t, cached[0].Items, 1)
}

func TestGetItem(t *testing.T) {
	svc := NewService(demoRepo(), nil, nopLogger{})

	item, err := svc.GetItem(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", item.Name)

	_, err = svc.GetItem(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestListItems_CategoryFilter(t *testing.T) {
	svc := NewService(demoRepo(), nil, nopLogger{})

	categoryID := int64(2)
	items, err := svc.ListItems(context.Background(), &categoryID, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee", items[0].Name)
}
