package api

import (
	"database/sql"
	"net/http"

	"github.com/jlhu/perdiem/internal/store"
)

// PrefsHandler serves the persisted language and theme preferences.
type PrefsHandler struct {
	DB *sql.DB
}

type prefs struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// Get handles GET /api/prefs.
func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang, err := store.Language(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load preferences")
		return
	}
	mode, err := store.Theme(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load preferences")
		return
	}
	jsonResponse(w, http.StatusOK, prefs{Language: lang, Theme: mode})
}

// Update handles PUT /api/prefs. Empty fields keep their current value.
func (h *PrefsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req prefs
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Language != "" {
		if err := store.SetLanguage(r.Context(), h.DB, req.Language); err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Theme != "" {
		if err := store.SetTheme(r.Context(), h.DB, req.Theme); err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	h.Get(w, r)
}
