package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/jlhu/perdiem/internal/db"
	"github.com/jlhu/perdiem/internal/store"
)

func TestReadMixedDates(t *testing.T) {
	conn := db.NewTestDB(t)

	data := `[
		{"name": "Laptop", "category": "电子产品", "price": 8999, "purchaseDate": "2024-03-15", "warrantyDate": "2026.03.15"},
		{"name": "Desk", "category": "家具", "price": "1200.50", "purchaseDate": 1710441600},
		{"name": "Old phone", "price": 2000, "purchaseDate": "2022-01", "retirementDate": "2024-06-01", "soldPrice": 400}
	]`

	n, err := Read(context.Background(), conn, strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if n != 3 {
		t.Fatalf("imported %d items, want 3", n)
	}

	items, err := store.ListItems(context.Background(), conn, "")
	if err != nil {
		t.Fatalf("ListItems() error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("listed %d items, want 3", len(items))
	}

	for _, it := range items {
		switch it.Name {
		case "Laptop":
			if !it.WarrantyDate.Valid() || it.WarrantyDate.String() != "2026-03-15" {
				t.Errorf("Laptop warranty = %q, want 2026-03-15", it.WarrantyDate.String())
			}
		case "Desk":
			if !it.PurchaseDate.Valid() {
				t.Error("Desk purchase date did not parse from unix seconds")
			}
			if it.Price.StringFixed(2) != "1200.50" {
				t.Errorf("Desk price = %s, want 1200.50", it.Price)
			}
		case "Old phone":
			if got := it.PurchaseDate.String(); got != "2022-01-01" {
				t.Errorf("month-only purchase date = %q, want 2022-01-01", got)
			}
			if !it.SoldPrice.Valid || it.SoldPrice.Decimal.StringFixed(2) != "400.00" {
				t.Errorf("sold price = %+v, want 400.00", it.SoldPrice)
			}
		}
	}
}

func TestReadSkipsInvalidRows(t *testing.T) {
	conn := db.NewTestDB(t)

	data := `[
		{"name": "Good", "price": 100},
		{"name": "", "price": 50},
		{"name": "Negative", "price": -20},
		{"name": "Also good", "price": "0"}
	]`

	n, err := Read(context.Background(), conn, strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d items, want 2", n)
	}
}

func TestReadMalformedJSON(t *testing.T) {
	conn := db.NewTestDB(t)

	if _, err := Read(context.Background(), conn, strings.NewReader(`{"not": "an array"`)); err == nil {
		t.Fatal("Read() succeeded on malformed input")
	}
}
