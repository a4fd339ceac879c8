package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/inventory-tracker/internal/item/domain"
	"github.com/tair/inventory-tracker/internal/item/usecase/command"
	"github.com/tair/inventory-tracker/internal/item/usecase/query"
	usermw "github.com/tair/inventory-tracker/internal/user/delivery/http"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// ItemHandler handles HTTP requests for the item catalog
type ItemHandler struct {
	createHandler   *command.CreateItemHandler
	updateHandler   *command.UpdateItemHandler
	deleteHandler   *command.DeleteItemHandler
	getHandler      *query.GetItemHandler
	listHandler     *query.ListItemsHandler
	lowStockHandler *query.LowStockHandler

	publisher *kafka.Publisher // nil when events are disabled

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// itemRequest is the request body for create/update
type itemRequest struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	MinStock int     `json:"min_stock"`
	Price    float64 `json:"price"`
	Supplier string  `json:"supplier"`
}

// NewItemHandler creates a new item handler
func NewItemHandler(repo domain.ItemRepository, publisher *kafka.Publisher) *ItemHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "item_service_requests_total",
			Help: "Total number of requests to item endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "item_service_request_duration_seconds",
			Help:    "Duration of item requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ItemHandler{
		createHandler:   command.NewCreateItemHandler(repo),
		updateHandler:   command.NewUpdateItemHandler(repo),
		deleteHandler:   command.NewDeleteItemHandler(repo),
		getHandler:      query.NewGetItemHandler(repo),
		listHandler:     query.NewListItemsHandler(repo),
		lowStockHandler: query.NewLowStockHandler(repo),
		publisher:       publisher,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *ItemHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.createHandler.Handle(r.Context(), command.CreateItemCommand{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		Price:    req.Price,
		Supplier: req.Supplier,
		UserID:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSKUExists):
			h.respondError(w, http.StatusConflict, "SKU already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Error(r.Context()).Err(err).Msg("Failed to create item")
			h.respondError(w, http.StatusInternalServerError, "Failed to create item")
		}
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishItemCreated(r.Context(), kafka.ItemCreatedEvent{
			ItemID:   item.ID,
			Name:     item.Name,
			SKU:      item.SKU,
			Quantity: item.Quantity,
			UserID:   userID,
		}); err != nil {
			logger.Error(r.Context()).Err(err).Uint("item_id", item.ID).Msg("Failed to publish item created event")
		}
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Item created successfully",
		"id":      item.ID,
	})
}

// GetItem handles GET /items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.getHandler.Handle(r.Context(), query.GetItemQuery{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		logger.Error(r.Context()).Err(err).Uint("item_id", id).Msg("Failed to fetch item")
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	items, err := h.listHandler.Handle(r.Context(), query.ListItemsQuery{UserID: userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list items")
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// UpdateItem handles PUT /items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.updateHandler.Handle(r.Context(), command.UpdateItemCommand{
		ID:       id,
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		Price:    req.Price,
		Supplier: req.Supplier,
		UserID:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			h.respondError(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, domain.ErrInvalidInput):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Error(r.Context()).Err(err).Uint("item_id", id).Msg("Failed to update item")
			h.respondError(w, http.StatusInternalServerError, "Failed to update item")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Item updated successfully"})
}

// DeleteItem handles DELETE /items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteItemCommand{ID: id, UserID: userID}); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		logger.Error(r.Context()).Err(err).Uint("item_id", id).Msg("Failed to delete item")
		h.respondError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// LowStock handles GET /items/alerts/low-stock
func (h *ItemHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	items, err := h.lowStockHandler.Handle(r.Context(), query.LowStockQuery{UserID: userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list low stock items")
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch low stock items")
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

func (h *ItemHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *ItemHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all item routes. The alerts route must precede
// the {id} route so mux does not swallow it.
func (h *ItemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/items/alerts/low-stock", h.metricsMiddleware("/items/alerts/low-stock", usermw.AuthMiddleware(h.LowStock))).Methods("GET")
	router.HandleFunc("/items", h.metricsMiddleware("/items", usermw.AuthMiddleware(h.ListItems))).Methods("GET")
	router.HandleFunc("/items", h.metricsMiddleware("/items", usermw.AuthMiddleware(h.CreateItem))).Methods("POST")
	router.HandleFunc("/items/{id}", h.metricsMiddleware("/items/{id}", usermw.AuthMiddleware(h.GetItem))).Methods("GET")
	router.HandleFunc("/items/{id}", h.metricsMiddleware("/items/{id}", usermw.AuthMiddleware(h.UpdateItem))).Methods("PUT")
	router.HandleFunc("/items/{id}", h.metricsMiddleware("/items/{id}", usermw.AuthMiddleware(h.DeleteItem))).Methods("DELETE")
}
