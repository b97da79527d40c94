// Package cost computes amortized-cost figures and lifecycle status for
// inventory items. Every function is a pure function of the item record
// and an explicit "now" instant, so callers can evaluate the whole list
// for any moment without shared state.
package cost

import (
	"encoding/json"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/model"
)

// Record holds the amortization figures for one item at one instant.
// The zero value is the "cannot amortize" record used when the purchase
// date is unknown.
type Record struct {
	// DailyCost is the amortized cost per day, rounded to 2 decimals.
	DailyCost decimal.Decimal

	// OriginalDailyCost is set only for sold, retired items with a
	// positive lifespan: the pre-sale daily cost, shown struck through
	// next to the discounted figure.
	OriginalDailyCost decimal.NullDecimal

	// TotalDays is the owned lifespan in days. Meaningless when
	// Unbounded is set.
	TotalDays int

	// Unbounded marks an item in open-ended use (no retirement date).
	Unbounded bool

	// DaysUsed is the elapsed day count, never negative.
	DaysUsed int

	// ConsumedValue is how much of the (net) price has been used up,
	// capped at the price itself so rounding can never overshoot.
	ConsumedValue decimal.Decimal
}

// MarshalJSON formats monetary fields with exactly two decimal places and
// encodes an unbounded lifespan as a null totalDays.
func (r Record) MarshalJSON() ([]byte, error) {
	out := struct {
		DailyCost         string `json:"dailyCost"`
		OriginalDailyCost string `json:"originalDailyCost,omitempty"`
		TotalDays         *int   `json:"totalDays"`
		Unbounded         bool   `json:"unbounded"`
		DaysUsed          int    `json:"daysUsed"`
		ConsumedValue     string `json:"consumedValue"`
	}{
		DailyCost:     r.DailyCost.StringFixed(2),
		Unbounded:     r.Unbounded,
		DaysUsed:      r.DaysUsed,
		ConsumedValue: r.ConsumedValue.StringFixed(2),
	}
	if r.OriginalDailyCost.Valid {
		out.OriginalDailyCost = r.OriginalDailyCost.Decimal.StringFixed(2)
	}
	if !r.Unbounded {
		out.TotalDays = &r.TotalDays
	}
	return json.Marshal(out)
}

// Compute returns the cost record for an item evaluated at now.
//
// An item without a parseable purchase date cannot be amortized and gets
// the zero record. Otherwise the item is classified as retired or in
// indefinite use from its retirement date alone, days used is the ceiling
// of the elapsed (or owned) span floored at zero, and the daily cost
// amortizes the net price over that span.
func Compute(item model.Item, now time.Time) Record {
	if !item.PurchaseDate.Valid() {
		return Record{}
	}
	purchase := item.PurchaseDate.Time()

	if item.IndefiniteUse() {
		daysUsed := ceilDays(purchase, now)
		if daysUsed < 0 {
			daysUsed = 0 // purchase date in the future
		}
		rec := Record{Unbounded: true, DaysUsed: daysUsed}
		if daysUsed > 0 {
			days := decimal.NewFromInt(int64(daysUsed))
			rec.DailyCost = item.Price.DivRound(days, 2)
			consumed := rec.DailyCost.Mul(days).Round(2)
			rec.ConsumedValue = decimal.Min(item.Price, consumed).Round(2)
		}
		return rec
	}

	retirement := item.RetirementDate.Time()
	totalDays := ceilDays(purchase, retirement)
	daysUsed := totalDays
	if daysUsed < 0 {
		daysUsed = 0
	}
	net := item.NetPrice()

	rec := Record{TotalDays: totalDays, DaysUsed: daysUsed}
	if totalDays <= 0 {
		// Purchased and retired the same day, or retired before
		// purchase. Nothing to amortize over, so the full net cost
		// counts as consumed.
		rec.ConsumedValue = net.Round(2)
		if item.Sold() {
			rec.OriginalDailyCost = decimal.NewNullDecimal(decimal.Zero)
		}
		return rec
	}

	days := decimal.NewFromInt(int64(totalDays))
	rec.DailyCost = net.DivRound(days, 2)
	if item.Sold() {
		rec.OriginalDailyCost = decimal.NewNullDecimal(item.Price.DivRound(days, 2))
	}
	consumed := rec.DailyCost.Mul(decimal.NewFromInt(int64(daysUsed))).Round(2)
	rec.ConsumedValue = decimal.Min(net, consumed).Round(2)
	return rec
}

// ceilDays returns the day count from one instant to another, rounded up.
// Negative when to precedes from.
func ceilDays(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
