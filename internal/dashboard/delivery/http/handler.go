package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/dashboard/usecase/query"
	itemdomain "github.com/tair/inventory-tracker/internal/item/domain"
	usermw "github.com/tair/inventory-tracker/internal/user/delivery/http"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// DashboardHandler handles HTTP requests for dashboard statistics
type DashboardHandler struct {
	statsHandler *query.GetStatsHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(repo itemdomain.ItemRepository) *DashboardHandler {
	return &DashboardHandler{
		statsHandler: query.NewGetStatsHandler(repo),
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := usermw.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	stats, err := h.statsHandler.Handle(r.Context(), query.GetStatsQuery{UserID: userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute dashboard stats")
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *DashboardHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard/stats", usermw.AuthMiddleware(h.GetStats)).Methods("GET")
}

// GetStats godoc
// @Summary Dashboard statistics for the caller
// @Description Item count, total quantity, total valuation and low-stock count, recomputed per call
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{items=object{total_items=int,total_quantity=int},total_value=number,low_stock=int}
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStatsDoc() {}
