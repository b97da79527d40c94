// Package importer loads items from an external JSON file, the same
// shape the dashboard's data files have always used: an array of item
// objects whose date fields may be ISO strings, month-only strings,
// Unix timestamps, or "no date" sentinels.
package importer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/debounce"
	"github.com/jlhu/perdiem/internal/flexdate"
	"github.com/jlhu/perdiem/internal/store"
)

// progressInterval is the quiet period between progress log lines during
// large imports.
const progressInterval = 500 * time.Millisecond

// rawItem mirrors one entry of the items JSON file. Dates unmarshal
// through flexdate and therefore never fail; prices are validated here,
// at the ingestion boundary.
type rawItem struct {
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	Notes     string       `json:"notes"`
	Price     json.Number  `json:"price"`
	SoldPrice *json.Number `json:"soldPrice"`

	PurchaseDate   flexdate.Date `json:"purchaseDate"`
	WarrantyDate   flexdate.Date `json:"warrantyDate"`
	RetirementDate flexdate.Date `json:"retirementDate"`
}

func (r rawItem) params() (store.ItemParams, error) {
	if r.Name == "" {
		return store.ItemParams{}, fmt.Errorf("missing name")
	}

	price, err := parsePrice(r.Price)
	if err != nil {
		return store.ItemParams{}, fmt.Errorf("price: %w", err)
	}

	p := store.ItemParams{
		Name:           r.Name,
		Category:       r.Category,
		Notes:          r.Notes,
		Price:          price,
		PurchaseDate:   r.PurchaseDate.Raw(),
		WarrantyDate:   r.WarrantyDate.Raw(),
		RetirementDate: r.RetirementDate.Raw(),
	}

	if r.SoldPrice != nil {
		sold, err := parsePrice(*r.SoldPrice)
		if err != nil {
			return store.ItemParams{}, fmt.Errorf("sold price: %w", err)
		}
		p.SoldPrice = decimal.NewNullDecimal(sold)
	}

	return p, nil
}

func parsePrice(n json.Number) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", n.String())
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount: %s", d)
	}
	return d, nil
}

// File imports the items JSON file at path. Returns the number of items
// imported; rows that fail validation are skipped and logged, not fatal.
func File(ctx context.Context, db *sql.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening items file: %w", err)
	}
	defer f.Close()

	n, err := Read(ctx, db, f)
	if err != nil {
		return n, fmt.Errorf("importing %s: %w", path, err)
	}
	return n, nil
}

// Read imports items from a JSON array.
func Read(ctx context.Context, db *sql.DB, r io.Reader) (int, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raws []rawItem
	if err := dec.Decode(&raws); err != nil {
		return 0, fmt.Errorf("decoding items: %w", err)
	}

	var imported atomic.Int64
	progress := debounce.New(progressInterval, func() {
		slog.Info("import progress", "imported", imported.Load(), "total", len(raws))
	})
	defer progress.Stop()

	skipped := 0
	for i, raw := range raws {
		p, err := raw.params()
		if err != nil {
			slog.Warn("skipping item", "index", i, "name", raw.Name, "error", err)
			skipped++
			continue
		}

		if _, err := store.CreateItem(ctx, db, p); err != nil {
			return int(imported.Load()), err
		}
		imported.Add(1)
		progress.Trigger()
	}
	progress.Flush()

	if skipped > 0 {
		slog.Warn("import finished with skipped items", "skipped", skipped)
	}
	return int(imported.Load()), nil
}
