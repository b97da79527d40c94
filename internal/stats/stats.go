// Package stats aggregates the item list into the dashboard's headline
// figures under a selectable calculation mode.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/cost"
	"github.com/jlhu/perdiem/internal/model"
)

// Calculation modes for the total-value counter.
const (
	// ModeAll sums the purchase price of every item.
	ModeAll = "all-purchases"
	// ModeActive excludes retired items from the total value.
	ModeActive = "active-only"
	// ModeNet substitutes the net cost (price minus sold price) for
	// sold items.
	ModeNet = "net-value"
)

// Valid reports whether mode is a known calculation mode.
func Valid(mode string) bool {
	return mode == ModeAll || mode == ModeActive || mode == ModeNet
}

// Cycle advances the mode toggle: all -> active -> net -> all.
func Cycle(mode string) string {
	switch mode {
	case ModeAll:
		return ModeActive
	case ModeActive:
		return ModeNet
	default:
		return ModeAll
	}
}

// Summary holds the aggregate figures for one evaluation of the list.
type Summary struct {
	TotalValue     decimal.Decimal
	TotalItems     int
	TotalDailyCost decimal.Decimal
}

// Summarize evaluates the whole list at now under the given mode.
//
// The total value follows the mode's policy. The item count and the daily
// cost sum are mode-independent: every item contributes its daily cost
// even when the mode excludes its value from the total.
func Summarize(items []model.Item, mode string, now time.Time) Summary {
	s := Summary{TotalItems: len(items)}

	for _, item := range items {
		retired := !item.IndefiniteUse()

		if !(mode == ModeActive && retired) {
			if mode == ModeNet {
				s.TotalValue = s.TotalValue.Add(item.NetPrice())
			} else {
				s.TotalValue = s.TotalValue.Add(item.Price)
			}
		}

		s.TotalDailyCost = s.TotalDailyCost.Add(cost.Compute(item, now).DailyCost)
	}

	return s
}
