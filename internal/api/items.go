package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/cost"
	"github.com/jlhu/perdiem/internal/flexdate"
	"github.com/jlhu/perdiem/internal/imaging"
	"github.com/jlhu/perdiem/internal/model"
	"github.com/jlhu/perdiem/internal/search"
	"github.com/jlhu/perdiem/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

// itemRequest is the write payload for POST and PUT. Dates pass through
// flexdate and so accept anything the dashboard's data files ever held;
// prices are the one field validated here.
type itemRequest struct {
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	Notes     string       `json:"notes"`
	Price     json.Number  `json:"price"`
	SoldPrice *json.Number `json:"soldPrice"`

	PurchaseDate   flexdate.Date `json:"purchaseDate"`
	WarrantyDate   flexdate.Date `json:"warrantyDate"`
	RetirementDate flexdate.Date `json:"retirementDate"`
}

func (req itemRequest) params() (store.ItemParams, string) {
	if req.Name == "" {
		return store.ItemParams{}, "name required"
	}

	price, msg := parseAmount(req.Price)
	if msg != "" {
		return store.ItemParams{}, "price: " + msg
	}

	p := store.ItemParams{
		Name:           req.Name,
		Category:       req.Category,
		Notes:          req.Notes,
		Price:          price,
		PurchaseDate:   req.PurchaseDate.Raw(),
		WarrantyDate:   req.WarrantyDate.Raw(),
		RetirementDate: req.RetirementDate.Raw(),
	}

	if req.SoldPrice != nil {
		sold, msg := parseAmount(*req.SoldPrice)
		if msg != "" {
			return store.ItemParams{}, "soldPrice: " + msg
		}
		p.SoldPrice = decimal.NewNullDecimal(sold)
	}
	return p, ""
}

func parseAmount(n json.Number) (decimal.Decimal, string) {
	if n == "" {
		return decimal.Zero, ""
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, "must be a number"
	}
	if d.IsNegative() {
		return decimal.Zero, "must not be negative"
	}
	return d, ""
}

// itemView is an item together with its computed cost and status, the
// shape every read endpoint returns.
type itemView struct {
	Item   model.Item  `json:"item"`
	Cost   cost.Record `json:"cost"`
	Status cost.Status `json:"status"`
}

func viewOf(item model.Item, now time.Time) itemView {
	return itemView{
		Item:   item,
		Cost:   cost.Compute(item, now),
		Status: cost.For(item, now),
	}
}

// List handles GET /api/items. Supports ?category= and ?q= filters.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB, "")
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")
	items = search.Filter(items, category, query)

	now := time.Now()
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, viewOf(item, now))
	}
	jsonResponse(w, http.StatusOK, views)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, msg := req.params()
	if msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, p)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}
	jsonResponse(w, http.StatusCreated, viewOf(*item, time.Now()))
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, viewOf(*item, time.Now()))
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, msg := req.params()
	if msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := store.UpdateItem(r.Context(), h.DB, id, p); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil || item == nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, viewOf(*item, time.Now()))
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// UploadImage handles PUT /api/items/{id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetItemImage(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
