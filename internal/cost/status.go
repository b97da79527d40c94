package cost

import (
	"time"

	"github.com/jlhu/perdiem/internal/model"
)

// Status kinds, in evaluation priority order.
const (
	StatusRetired  = "retired"
	StatusExpired  = "expired"
	StatusExpiring = "expiring"
	StatusActive   = "active"
)

// ExpiringWindowDays is how close a warranty end may be before the item
// is flagged as expiring soon.
const ExpiringWindowDays = 30

// Status classifies an item's lifecycle at one instant. DaysToWarranty is
// only meaningful for StatusExpiring. Labels are a rendering concern; the
// engine emits tags and numbers only.
type Status struct {
	Kind           string `json:"kind"`
	DaysToWarranty int    `json:"daysToWarranty,omitempty"`
}

// For classifies an item at now. First match wins:
//
//  1. Retirement instant at or before now: retired. A future retirement
//     date does not retire the item yet; until then warranty rules apply.
//  2. No parseable warranty date: active.
//  3. Warranty instant strictly before now: expired.
//  4. Warranty within the expiring window: expiring, with the day count.
//  5. Otherwise active.
func For(item model.Item, now time.Time) Status {
	if ret := item.RetirementDate; ret.Valid() && !ret.Time().After(now) {
		return Status{Kind: StatusRetired}
	}

	warranty := item.WarrantyDate
	if !warranty.Valid() {
		return Status{Kind: StatusActive}
	}
	if warranty.Time().Before(now) {
		return Status{Kind: StatusExpired}
	}
	if d := ceilDays(now, warranty.Time()); d > 0 && d <= ExpiringWindowDays {
		return Status{Kind: StatusExpiring, DaysToWarranty: d}
	}
	return Status{Kind: StatusActive}
}
