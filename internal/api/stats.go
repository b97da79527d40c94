package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/jlhu/perdiem/internal/search"
	"github.com/jlhu/perdiem/internal/stats"
	"github.com/jlhu/perdiem/internal/store"
)

// StatsHandler serves the dashboard summary counters.
type StatsHandler struct {
	DB *sql.DB
}

type statsResponse struct {
	Mode           string `json:"mode"`
	TotalValue     string `json:"totalValue"`
	TotalItems     int    `json:"totalItems"`
	TotalDailyCost string `json:"totalDailyCost"`
}

// Get handles GET /api/stats. Accepts the same ?category= and ?q=
// filters as the item list plus ?mode= for the value policy.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = stats.ModeAll
	}
	if !stats.Valid(mode) {
		jsonError(w, http.StatusBadRequest, "invalid stats mode")
		return
	}

	items, err := store.ListItems(r.Context(), h.DB, "")
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	items = search.Filter(items, r.URL.Query().Get("category"), r.URL.Query().Get("q"))

	s := stats.Summarize(items, mode, time.Now())
	jsonResponse(w, http.StatusOK, statsResponse{
		Mode:           mode,
		TotalValue:     s.TotalValue.StringFixed(2),
		TotalItems:     s.TotalItems,
		TotalDailyCost: s.TotalDailyCost.StringFixed(2),
	})
}
