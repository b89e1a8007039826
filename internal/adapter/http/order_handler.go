package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/gorilla/mux"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, lgr logger.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: lgr}
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   *string            `json:"customer_email,omitempty"`
	OrderType       string             `json:"order_type"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	Items           []OrderLineRequest `json:"items"`
}

type OrderLineRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type OrderResponse struct {
	ID              int64               `json:"id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerEmail   *string             `json:"customer_email,omitempty"`
	OrderType       string              `json:"order_type"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	PaymentMethod   string              `json:"payment_method"`
	Total           string              `json:"total"`
	Status          string              `json:"status"`
	Items           []OrderLineResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type OrderLineResponse struct {
	ID           int64  `json:"id"`
	MenuItemID   int64  `json:"menu_item_id"`
	Quantity     int    `json:"quantity"`
	PriceAtOrder string `json:"price_at_order"`
	NameAtOrder  string `json:"name_at_order"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := interfaces.CreateOrderCommand{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerEmail:   req.CustomerEmail,
		OrderType:       req.OrderType,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Lines:           make([]interfaces.OrderLineRequest, len(req.Items)),
	}
	if cmd.PaymentMethod == "" {
		cmd.PaymentMethod = string(domain.PaymentMethodCash)
	}
	for i, item := range req.Items {
		cmd.Lines[i] = interfaces.OrderLineRequest{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	order, err := h.service.Create(r.Context(), cmd)
	if err != nil {
		if !domain.IsClientError(err) {
			h.logger.Error("order_creation_failed", "Failed to create order", requestID(r), nil, err)
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		if !domain.IsClientError(err) {
			h.logger.Error("status_update_failed", "Failed to update order status", requestID(r), nil, err)
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		if !domain.IsClientError(err) {
			h.logger.Error("cancel_failed", "Failed to cancel order", requestID(r), nil, err)
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	logs, err := h.service.History(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]map[string]interface{}, len(logs))
	for i, log := range logs {
		resp[i] = map[string]interface{}{
			"status":     log.Status,
			"changed_by": log.ChangedBy,
			"changed_at": log.ChangedAt,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return id, true
}

func toOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		items[i] = OrderLineResponse{
			ID:           line.ID,
			MenuItemID:   line.MenuItemID,
			Quantity:     line.Quantity,
			PriceAtOrder: line.PriceAtOrder.StringFixed(2),
			NameAtOrder:  line.NameAtOrder,
		}
	}

	return OrderResponse{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		OrderType:       string(order.Type),
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   string(order.PaymentMethod),
		Total:           order.Total.StringFixed(2),
		Status:          string(order.Status),
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
