// Package rest exposes the availability check over HTTP with JSON
// bodies. Domain failures are encoded in the response payload; only
// malformed requests produce non-200 status codes.
package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/partflow/atp/pkg/application/dto"
	"github.com/partflow/atp/pkg/application/services/atp"
	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/domain/repositories"
)

const shipDateLayout = "2006-01-02"

// Handler serves the availability API.
type Handler struct {
	service *atp.ATPService
	ledger  repositories.StockLedger
}

// NewHandler creates a new HTTP handler around the allocation service.
// The ledger is only used for the read-only stock listing.
func NewHandler(service *atp.ATPService, ledger repositories.StockLedger) *Handler {
	return &Handler{service: service, ledger: ledger}
}

// RegisterRoutes registers all routes on the ServeMux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/api/atp/check", h.checkHandler)
	mux.HandleFunc("/api/atp/stock", h.stockHandler)
}

type checkRequest struct {
	CustomerID string             `json:"customerId"`
	OrderType  string             `json:"orderType"`
	Items      []checkRequestItem `json:"items"`
}

type checkRequestItem struct {
	ProductID         string `json:"productId"`
	RequestedQuantity int64  `json:"requestedQuantity"`
}

type checkResponse struct {
	OrderID       string       `json:"orderId"`
	OverallStatus string       `json:"overallStatus"`
	Results       []resultItem `json:"results"`
}

type resultItem struct {
	OriginalProductID  string  `json:"originalProductId"`
	FulfilledProductID *string `json:"fulfilledProductId"`
	RequestedQuantity  int64   `json:"requestedQuantity"`
	ConfirmedQuantity  int64   `json:"confirmedQuantity"`
	SourceWarehouseID  *string `json:"sourceWarehouseId"`
	EstimatedShipDate  *string `json:"estimatedShipDate"`
	Message            string  `json:"message"`
}

type stockEntry struct {
	ProductID   string `json:"productId"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int64  `json:"quantity"`
}

func (h *Handler) checkHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body checkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	request, err := toDomainRequest(&body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.service.CheckAvailability(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Str("customer", body.CustomerID).Msg("availability check failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("order", response.OrderID).
		Str("customer", body.CustomerID).
		Str("status", response.OverallStatus.String()).
		Int("items", len(response.Results)).
		Msg("availability check")

	writeJSON(w, toWireResponse(response))
}

func (h *Handler) stockHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.ledger.GetAllInventory()
	if err != nil {
		log.Error().Err(err).Msg("stock listing failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	productFilter := r.URL.Query().Get("product")
	warehouseFilter := r.URL.Query().Get("warehouse")

	entries := make([]stockEntry, 0, len(items))
	for _, item := range items {
		if productFilter != "" && string(item.ProductID) != productFilter {
			continue
		}
		if warehouseFilter != "" && string(item.WarehouseID) != warehouseFilter {
			continue
		}
		entries = append(entries, stockEntry{
			ProductID:   string(item.ProductID),
			WarehouseID: string(item.WarehouseID),
			Quantity:    int64(item.Quantity),
		})
	}
	writeJSON(w, map[string][]stockEntry{"inventory": entries})
}

func toDomainRequest(body *checkRequest) (*dto.AtpRequest, error) {
	if body.CustomerID == "" {
		return nil, fmt.Errorf("customerId is required")
	}

	orderType, err := entities.ParseOrderType(body.OrderType)
	if err != nil {
		return nil, err
	}

	items := make([]entities.AtpRequestItem, 0, len(body.Items))
	for i, item := range body.Items {
		parsed, err := entities.NewAtpRequestItem(entities.ProductID(item.ProductID), entities.Quantity(item.RequestedQuantity))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, *parsed)
	}

	return &dto.AtpRequest{
		CustomerID: entities.CustomerID(body.CustomerID),
		OrderType:  orderType,
		Items:      items,
	}, nil
}

func toWireResponse(response *dto.AtpResponse) checkResponse {
	results := make([]resultItem, 0, len(response.Results))
	for _, result := range response.Results {
		item := resultItem{
			OriginalProductID: string(result.OriginalProductID),
			RequestedQuantity: int64(result.RequestedQuantity),
			ConfirmedQuantity: int64(result.ConfirmedQuantity),
			Message:           result.Message,
		}
		if result.FulfilledProductID != "" {
			id := string(result.FulfilledProductID)
			item.FulfilledProductID = &id
		}
		if result.SourceWarehouseID != "" {
			id := string(result.SourceWarehouseID)
			item.SourceWarehouseID = &id
		}
		if result.EstimatedShipDate != nil {
			date := result.EstimatedShipDate.Format(shipDateLayout)
			item.EstimatedShipDate = &date
		}
		results = append(results, item)
	}

	return checkResponse{
		OrderID:       response.OrderID,
		OverallStatus: response.OverallStatus.String(),
		Results:       results,
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
