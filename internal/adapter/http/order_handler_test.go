package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, string, string, map[string]interface{})         {}
func (nopLogger) Debug(string, string, string, map[string]interface{})        {}
func (nopLogger) Error(string, string, string, map[string]interface{}, error) {}

type stubOrderService struct {
	order *domain.Order
	err   error
}

func (s *stubOrderService) Create(context.Context, interfaces.CreateOrderCommand) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Get(context.Context, int64) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) List(context.Context, string) ([]*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Order{s.order}, nil
}

func (s *stubOrderService) SetStatus(context.Context, int64, string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Cancel(context.Context, int64) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) History(context.Context, int64) ([]*domain.StatusLog, error) {
	return nil, s.err
}

type stubMenuService struct{}

func (stubMenuService) ListCategories(context.Context) ([]*domain.MenuCategory, error) {
	return nil, nil
}

func (stubMenuService) ListItems(context.Context, *int64, string) ([]*domain.MenuItem, error) {
	return nil, nil
}

func (stubMenuService) GetItem(context.Context, int64) (*domain.MenuItem, error) {
	return nil, domain.ErrItemNotFound
}

type stubBusinessService struct{}

func (stubBusinessService) Get(context.Context) (*domain.BusinessInfo, error) {
	return domain.DefaultBusinessInfo(), nil
}

func (stubBusinessService) Update(_ context.Context, cmd interfaces.UpdateBusinessCommand) (*domain.BusinessInfo, error) {
	return &domain.BusinessInfo{ID: 1, Name: cmd.Name}, nil
}

func demoOrder() *domain.Order {
	address := "742 Evergreen Terrace"
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Order{
		ID:              7,
		CustomerName:    "Alice",
		CustomerPhone:   "555-0100",
		Type:            domain.OrderTypeDelivery,
		DeliveryAddress: &address,
		PaymentMethod:   domain.PaymentMethodCard,
		Total:           decimal.RequireFromString("28.97"),
		Status:          domain.StatusNew,
		Lines: []domain.OrderLine{
			{ID: 1, OrderID: 7, MenuItemID: 1, Quantity: 2, PriceAtOrder: decimal.RequireFromString("12.99"), NameAtOrder: "Buffalo Wings"},
			{ID: 2, OrderID: 7, MenuItemID: 10, Quantity: 1, PriceAtOrder: decimal.RequireFromString("2.99"), NameAtOrder: "Coffee"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testRouter(svc interfaces.OrderService) http.Handler {
	lgr := nopLogger{}
	return NewRouter(
		NewOrderHandler(svc, lgr),
		NewMenuHandler(stubMenuService{}, lgr),
		NewBusinessHandler(stubBusinessService{}, lgr),
		lgr, nil, "http://localhost:3000",
	)
}

func TestCreateOrder_Created(t *testing.T) {
	router := testRouter(&stubOrderService{order: demoOrder()})

	body, _ := json.Marshal(CreateOrderRequest{
		CustomerName:  "Alice",
		CustomerPhone: "555-0100",
		OrderType:     "pickup",
		Items:         []OrderLineRequest{{MenuItemID: 1, Quantity: 2}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "28.97", resp.Total)
	assert.Equal(t, "new", resp.Status)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "12.99", resp.Items[0].PriceAtOrder)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCreateOrder_MalformedBody(t *testing.T) {
	router := testRouter(&stubOrderService{order: demoOrder()})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{oops")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		err      error
		wantCode int
	}{
		{"validation_error", http.MethodPost, "/api/orders", `{"items":[]}`,
			&domain.ValidationError{Field: "customer_name", Message: "customer name is required"}, http.StatusBadRequest},
		{"invalid_line_item", http.MethodPost, "/api/orders", `{"items":[{"menu_item_id":404,"quantity":1}]}`,
			&domain.InvalidLineItemError{MenuItemID: 404, Reason: "menu item is invalid or unavailable"}, http.StatusBadRequest},
		{"order_not_found", http.MethodGet, "/api/orders/999", "",
			domain.ErrOrderNotFound, http.StatusNotFound},
		{"invalid_status", http.MethodPatch, "/api/orders/7/status", `{"status":"cooking"}`,
			domain.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid_transition", http.MethodPatch, "/api/orders/7/status", `{"status":"cancelled"}`,
			domain.ErrInvalidTransition, http.StatusConflict},
		{"grace_period_expired", http.MethodDelete, "/api/orders/7", "",
			domain.ErrGracePeriodExpired, http.StatusConflict},
		{"concurrent_update", http.MethodPatch, "/api/orders/7/status", `{"status":"accepted"}`,
			domain.ErrConcurrentUpdate, http.StatusConflict},
		{"infrastructure_error", http.MethodGet, "/api/orders/7", "",
			errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := testRouter(&stubOrderService{err: tc.err})

			req := httptest.NewRequest(tc.method, tc.path, bytes.NewReader([]byte(tc.body)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			if tc.wantCode == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", resp.Error,
					"infrastructure detail must not leak to the caller")
			}
		})
	}
}

func TestInvalidOrderID(t *testing.T) {
	router := testRouter(&stubOrderService{order: demoOrder()})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	router := testRouter(&stubOrderService{order: demoOrder()})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
