package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
)

type BusinessHandler struct {
	service interfaces.BusinessService
	logger  logger.Logger
}

func NewBusinessHandler(service interfaces.BusinessService, lgr logger.Logger) *BusinessHandler {
	return &BusinessHandler{service: service, logger: lgr}
}

type BusinessInfoRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Hours   string  `json:"hours"`
	LogoURL *string `json:"logo_url,omitempty"`
}

type BusinessInfoResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Hours   string  `json:"hours"`
	LogoURL *string `json:"logo_url,omitempty"`
}

func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("business_query_failed", "Failed to load business info", requestID(r), nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBusinessResponse(info))
}

func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req BusinessInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(w, &domain.ValidationError{Field: "name", Message: "business name is required"})
		return
	}

	info, err := h.service.Update(r.Context(), interfaces.UpdateBusinessCommand{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Hours:   req.Hours,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		h.logger.Error("business_update_failed", "Failed to update business info", requestID(r), nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBusinessResponse(info))
}

func toBusinessResponse(info *domain.BusinessInfo) BusinessInfoResponse {
	return BusinessInfoResponse{
		ID:      info.ID,
		Name:    info.Name,
		Address: info.Address,
		Phone:   info.Phone,
		Hours:   info.Hours,
		LogoURL: info.LogoURL,
	}
}
