package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/flexdate"
)

// Item represents a purchased belonging tracked by the dashboard.
//
// The three date fields keep whatever the user entered; parsing into an
// instant (or absent) happens once via flexdate when the record is loaded.
// A present SoldPrice means the item was sold on and its net cost is
// Price - SoldPrice.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Notes    string `json:"notes,omitempty"`

	Price     decimal.Decimal     `json:"price"`
	SoldPrice decimal.NullDecimal `json:"soldPrice"`

	PurchaseDate   flexdate.Date `json:"purchaseDate"`
	WarrantyDate   flexdate.Date `json:"warrantyDate"`
	RetirementDate flexdate.Date `json:"retirementDate"`

	ImageMime string     `json:"image_mime,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Sold reports whether the item has been sold on.
func (i Item) Sold() bool { return i.SoldPrice.Valid }

// NetPrice returns the purchase price minus the sold price for sold items,
// and the plain purchase price otherwise.
func (i Item) NetPrice() decimal.Decimal {
	if i.SoldPrice.Valid {
		return i.Price.Sub(i.SoldPrice.Decimal)
	}
	return i.Price
}

// IndefiniteUse reports whether the item is in open-ended use: its
// retirement date is a sentinel or failed to parse. The inverse means the
// item is retired, with the parsed value as the retirement instant.
func (i Item) IndefiniteUse() bool { return !i.RetirementDate.Valid() }
