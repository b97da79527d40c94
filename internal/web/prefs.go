package web

import (
	"log/slog"
	"net/http"

	"github.com/jlhu/perdiem/internal/store"
)

// PrefsSubmit handles POST /prefs: the language and theme pills post
// here and bounce back to wherever the user was.
func (s *Server) PrefsSubmit(w http.ResponseWriter, r *http.Request) {
	if lang := r.FormValue("language"); lang != "" {
		if err := store.SetLanguage(r.Context(), s.DB, lang); err != nil {
			slog.Warn("rejected language preference", "value", lang, "error", err)
		}
	}
	if mode := r.FormValue("theme"); mode != "" {
		if err := store.SetTheme(r.Context(), s.DB, mode); err != nil {
			slog.Warn("rejected theme preference", "value", mode, "error", err)
		}
	}

	back := r.FormValue("back")
	if back == "" || back[0] != '/' {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
