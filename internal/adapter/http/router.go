package http

import (
	"net/http"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/adapter/metrics"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires all handlers under /api and wraps the tree with the
// request-id, logging, recovery and metrics middleware plus CORS for the
// storefront origin.
func NewRouter(orders *OrderHandler, menu *MenuHandler, business *BusinessHandler,
	lgr logger.Logger, m *metrics.ServerMetrics, corsOrigin string) http.Handler {

	r := mux.NewRouter()

	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Online Ordering System Backend is running!"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/menu/categories", menu.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/api/menu/items", menu.ListItems).Methods(http.MethodGet)
	r.HandleFunc("/api/menu/items/{id}", menu.GetItem).Methods(http.MethodGet)

	r.HandleFunc("/api/orders", orders.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", orders.List).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}", orders.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}", orders.Cancel).Methods(http.MethodDelete)
	r.HandleFunc("/api/orders/{id}/status", orders.UpdateStatus).Methods(http.MethodPatch)
	r.HandleFunc("/api/orders/{id}/history", orders.History).Methods(http.MethodGet)

	r.HandleFunc("/api/business", business.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/business", business.Update).Methods(http.MethodPut)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.Use(mux.MiddlewareFunc(RequestIDMiddleware))
	r.Use(mux.MiddlewareFunc(LoggingMiddleware(lgr)))
	r.Use(mux.MiddlewareFunc(RecoveryMiddleware(lgr)))
	if m != nil {
		r.Use(mux.MiddlewareFunc(MetricsMiddleware(m)))
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
