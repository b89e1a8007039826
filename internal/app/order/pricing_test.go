package order

import (
	"context"
	"testing"

	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoMenu() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[int64]*domain.MenuItem{
		1:  {ID: 1, Name: "Buffalo Wings", Price: decimal.RequireFromString("12.99"), Visible: true},
		10: {ID: 10, Name: "Coffee", Price: decimal.RequireFromString("2.99"), Visible: true},
		77: {ID: 77, Name: "Secret Special", Price: decimal.RequireFromString("99.00"), Visible: false},
	}}
}

func TestResolve_SnapshotsPriceAndName(t *testing.T) {
	resolver := NewPricingResolver(demoMenu())

	lines, total, err := resolver.Resolve(context.Background(), []interfaces.OrderLineRequest{
		{MenuItemID: 1, Quantity: 2},
		{MenuItemID: 10, Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "Buffalo Wings", lines[0].NameAtOrder)
	assert.True(t, lines[0].PriceAtOrder.Equal(decimal.RequireFromString("12.99")))
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Coffee", lines[1].NameAtOrder)
	assert.True(t, total.Equal(decimal.RequireFromString("28.97")), "got %s", total)
}

func TestResolve_SingleCatalogRead(t *testing.T) {
	menu := demoMenu()
	resolver := NewPricingResolver(menu)

	_, _, err := resolver.Resolve(context.Background(), []interfaces.OrderLineRequest{
		{MenuItemID: 1, Quantity: 1},
		{MenuItemID: 10, Quantity: 2},
		{MenuItemID: 1, Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, menu.calls, "all lines must price against one catalog read")
}

func TestResolve_DuplicateItemAcrossLines(t *testing.T) {
	resolver := NewPricingResolver(demoMenu())

	lines, total, err := resolver.Resolve(context.Background(), []interfaces.OrderLineRequest{
		{MenuItemID: 10, Quantity: 1},
		{MenuItemID: 10, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, total.Equal(decimal.RequireFromString("8.97")), "got %s", total)
}

func TestResolve_AllOrNothing(t *testing.T) {
	tests := []struct {
		name string
		reqs []interfaces.OrderLineRequest
		id   int64
	}{
		{
			name: "unknown_item",
			reqs: []interfaces.OrderLineRequest{{MenuItemID: 1, Quantity: 1}, {MenuItemID: 404, Quantity: 1}},
			id:   404,
		},
		{
			name: "invisible_item",
			reqs: []interfaces.OrderLineRequest{{MenuItemID: 77, Quantity: 1}, {MenuItemID: 1, Quantity: 1}},
			id:   77,
		},
		{
			name: "zero_quantity",
			reqs: []interfaces.OrderLineRequest{{MenuItemID: 1, Quantity: 0}},
			id:   1,
		},
		{
			name: "negative_quantity",
			reqs: []interfaces.OrderLineRequest{{MenuItemID: 10, Quantity: -2}},
			id:   10,
		},
	}

	resolver := NewPricingResolver(demoMenu())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines, _, err := resolver.Resolve(context.Background(), tc.reqs)
			var le *domain.InvalidLineItemError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tc.id, le.MenuItemID)
			assert.Nil(t, lines)
		})
	}
}

func TestResolve_EmptyRequest(t *testing.T) {
	resolver := NewPricingResolver(demoMenu())

	_, _, err := resolver.Resolve(context.Background(), nil)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items", ve.Field)
}
