package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/gorilla/mux"
)

type MenuHandler struct {
	service interfaces.MenuService
	logger  logger.Logger
}

func NewMenuHandler(service interfaces.MenuService, lgr logger.Logger) *MenuHandler {
	return &MenuHandler{service: service, logger: lgr}
}

type CategoryResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	SortOrder int            `json:"sort_order"`
	Items     []ItemResponse `json:"items"`
}

type ItemResponse struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       string    `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Visible     bool      `json:"visible"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("menu_query_failed", "Failed to list categories", requestID(r), nil, err)
		respondError(w, err)
		return
	}

	resp := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		items := make([]ItemResponse, len(cat.Items))
		for j := range cat.Items {
			items[j] = toItemResponse(&cat.Items[j])
		}
		resp[i] = CategoryResponse{
			ID:        cat.ID,
			Name:      cat.Name,
			SortOrder: cat.SortOrder,
			Items:     items,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondErrorMessage(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		categoryID = &id
	}

	items, err := h.service.ListItems(r.Context(), categoryID, r.URL.Query().Get("search"))
	if err != nil {
		h.logger.Error("menu_query_failed", "Failed to list menu items", requestID(r), nil, err)
		respondError(w, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "Invalid menu item id")
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toItemResponse(item))
}

func toItemResponse(item *domain.MenuItem) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		ImageURL:    item.ImageURL,
		Visible:     item.Visible,
		SortOrder:   item.SortOrder,
		CreatedAt:   item.CreatedAt,
	}
}
