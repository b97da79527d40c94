package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/cost"
	"github.com/jlhu/perdiem/internal/imaging"
	"github.com/jlhu/perdiem/internal/model"
	"github.com/jlhu/perdiem/internal/store"
)

// formParams converts a submitted item form into store parameters.
// Dates are stored as entered; normalization happens when reading back.
func formParams(r *http.Request) (store.ItemParams, error) {
	name := r.FormValue("name")
	if name == "" {
		return store.ItemParams{}, fmt.Errorf("name required")
	}

	price, err := parseFormAmount(r.FormValue("price"))
	if err != nil {
		return store.ItemParams{}, fmt.Errorf("price: %w", err)
	}

	p := store.ItemParams{
		Name:           name,
		Category:       r.FormValue("category"),
		Notes:          r.FormValue("notes"),
		Price:          price,
		PurchaseDate:   r.FormValue("purchase_date"),
		WarrantyDate:   r.FormValue("warranty_date"),
		RetirementDate: r.FormValue("retirement_date"),
	}

	if sold := r.FormValue("sold_price"); sold != "" {
		d, err := parseFormAmount(sold)
		if err != nil {
			return store.ItemParams{}, fmt.Errorf("sold price: %w", err)
		}
		p.SoldPrice = decimal.NewNullDecimal(d)
	}
	return p, nil
}

func parseFormAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number")
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("must not be negative")
	}
	return d, nil
}

// ItemNewPage handles GET /items/new.
func (s *Server) ItemNewPage(w http.ResponseWriter, r *http.Request) {
	pd := s.pageChrome(r.Context(), "PerDiem")
	s.Templates.Render(w, "item_form.html", &struct {
		PageData
		Item *model.Item
	}{PageData: pd})
}

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	p, err := formParams(r)
	if err != nil {
		pd := s.pageChrome(r.Context(), "PerDiem")
		pd.Error = err.Error()
		s.Templates.Render(w, "item_form.html", &struct {
			PageData
			Item *model.Item
		}{PageData: pd})
		return
	}

	item, err := store.CreateItem(r.Context(), s.DB, p)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/items/%d", item.ID), http.StatusSeeOther)
}

// ItemDetailPage handles GET /items/{id}.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.NotFound(w, r)
		return
	}

	pd := s.pageChrome(r.Context(), item.Name)
	now := time.Now()
	st := cost.For(*item, now)

	s.Templates.Render(w, "item_detail.html", &struct {
		PageData
		Item        *model.Item
		Cost        cost.Record
		Status      cost.Status
		StatusLabel string
	}{
		PageData:    pd,
		Item:        item,
		Cost:        cost.Compute(*item, now),
		Status:      st,
		StatusLabel: pd.Dict.StatusLabel(st),
	})
}

// ItemEditPage handles GET /items/{id}/edit.
func (s *Server) ItemEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.NotFound(w, r)
		return
	}

	pd := s.pageChrome(r.Context(), item.Name)
	s.Templates.Render(w, "item_form.html", &struct {
		PageData
		Item *model.Item
	}{PageData: pd, Item: item})
}

// ItemUpdateSubmit handles POST /items/{id}.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := formParams(r)
	if err != nil {
		http.Redirect(w, r, fmt.Sprintf("/items/%d/edit", id), http.StatusSeeOther)
		return
	}

	if err := store.UpdateItem(r.Context(), s.DB, id, p); err != nil {
		slog.Error("failed to update item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/items/%d", id), http.StatusSeeOther)
}

// ItemDeleteSubmit handles POST /items/{id}/delete.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.DeleteItem(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to delete item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemImageSubmit handles POST /items/{id}/image.
func (s *Server) ItemImageSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		http.Error(w, "file too large", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := store.SetItemImage(r.Context(), s.DB, id, photo.Data, photo.MIME); err != nil {
		slog.Error("failed to save image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/items/%d", id), http.StatusSeeOther)
}

// ItemImageGet handles GET /items/{id}/image.
func (s *Server) ItemImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
