package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/ledger/domain"
	"github.com/tair/inventory-tracker/internal/ledger/usecase/command"
	"github.com/tair/inventory-tracker/internal/ledger/usecase/query"
	usermw "github.com/tair/inventory-tracker/internal/user/delivery/http"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// LedgerHandler handles HTTP requests for stock movements
type LedgerHandler struct {
	recordHandler *command.RecordMovementHandler
	listHandler   *query.ListTransactionsHandler

	publisher *kafka.Publisher // nil when events are disabled
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(recordHandler *command.RecordMovementHandler, listHandler *query.ListTransactionsHandler, publisher *kafka.Publisher) *LedgerHandler {
	return &LedgerHandler{
		recordHandler: recordHandler,
		listHandler:   listHandler,
		publisher:     publisher,
	}
}

// RecordMovement handles POST /transactions
func (h *LedgerHandler) RecordMovement(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		ItemID   uint   `json:"item_id"`
		Type     string `json:"type"`
		Quantity int    `json:"quantity"`
		Notes    string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.recordHandler.Handle(r.Context(), command.RecordMovementCommand{
		ItemID:   req.ItemID,
		Type:     req.Type,
		Quantity: req.Quantity,
		Notes:    req.Notes,
		UserID:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			h.respondError(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, domain.ErrItemRequired),
			errors.Is(err, domain.ErrInvalidDirection),
			errors.Is(err, domain.ErrInvalidQuantity):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Error(r.Context()).Err(err).Uint("item_id", req.ItemID).Msg("Failed to record movement")
			h.respondError(w, http.StatusInternalServerError, "Failed to record transaction")
		}
		return
	}

	// The movement is committed; event publishing is best effort
	if h.publisher != nil {
		if err := h.publisher.PublishStockMovement(r.Context(), kafka.StockMovementEvent{
			TransactionID: txn.ID,
			ItemID:        txn.ItemID,
			Type:          txn.Type,
			Quantity:      txn.Quantity,
			UserID:        txn.UserID,
		}); err != nil {
			logger.Error(r.Context()).Err(err).Uint("transaction_id", txn.ID).Msg("Failed to publish stock movement event")
		}
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Transaction recorded successfully",
		"id":      txn.ID,
	})
}

// ListTransactions handles GET /transactions?itemId=
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var itemID uint
	if raw := r.URL.Query().Get("itemId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid item ID")
			return
		}
		itemID = uint(parsed)
	}

	rows, err := h.listHandler.Handle(r.Context(), query.ListTransactionsQuery{UserID: userID, ItemID: itemID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list transactions")
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, rows)
}

func (h *LedgerHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *LedgerHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all transaction routes
func (h *LedgerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/transactions", usermw.AuthMiddleware(h.RecordMovement)).Methods("POST")
	router.HandleFunc("/transactions", usermw.AuthMiddleware(h.ListTransactions)).Methods("GET")
}
