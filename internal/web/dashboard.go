package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jlhu/perdiem/internal/cost"
	"github.com/jlhu/perdiem/internal/i18n"
	"github.com/jlhu/perdiem/internal/model"
	"github.com/jlhu/perdiem/internal/search"
	"github.com/jlhu/perdiem/internal/stats"
	"github.com/jlhu/perdiem/internal/store"
	"github.com/jlhu/perdiem/internal/theme"
)

// card is one item prepared for rendering: the raw record plus its
// computed figures and the already-localized status label.
type card struct {
	Item        model.Item
	Cost        cost.Record
	Status      cost.Status
	StatusLabel string
}

// pageChrome loads the persisted language and theme and builds the
// shared PageData for a page.
func (s *Server) pageChrome(ctx context.Context, title string) PageData {
	lang, err := store.Language(ctx, s.DB)
	if err != nil {
		slog.Error("failed to load language", "error", err)
		lang = i18n.Default
	}
	mode, err := store.Theme(ctx, s.DB)
	if err != nil {
		slog.Error("failed to load theme", "error", err)
		mode = theme.Auto
	}
	return PageData{Title: title, Lang: lang, Dict: i18n.Table(lang), Theme: mode}
}

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	pd := s.pageChrome(r.Context(), "PerDiem")
	now := time.Now()

	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	mode := r.URL.Query().Get("mode")
	if !stats.Valid(mode) {
		mode = stats.ModeAll
	}

	items, err := store.ListItems(r.Context(), s.DB, "")
	if err != nil {
		slog.Error("failed to list items for dashboard", "error", err)
	}

	summary := stats.Summarize(items, mode, now)
	filtered := search.Filter(items, category, query)

	cards := make([]card, 0, len(filtered))
	for _, item := range filtered {
		st := cost.For(item, now)
		cards = append(cards, card{
			Item:        item,
			Cost:        cost.Compute(item, now),
			Status:      st,
			StatusLabel: pd.Dict.StatusLabel(st),
		})
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Summary      stats.Summary
		SummaryLabel string
		Mode         string
		NextMode     string
		Query        string
		Category     string
		Categories   []string
		Cards        []card
		Now          string
		DayName      string
		ToggleLang   string
		NextTheme    string
	}{
		PageData:     pd,
		Summary:      summary,
		SummaryLabel: pd.Dict.ModeLabel(mode),
		Mode:         mode,
		NextMode:     stats.Cycle(mode),
		Query:        query,
		Category:     category,
		Categories:   search.Categories(items),
		Cards:        cards,
		Now:          now.Format("2006-01-02 15:04:05"),
		DayName:      pd.Dict.DayNames[int(now.Weekday())],
		ToggleLang:   i18n.Toggle(pd.Lang),
		NextTheme:    theme.Next(pd.Theme),
	})
}
