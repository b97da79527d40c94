package cost

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/flexdate"
	"github.com/jlhu/perdiem/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestComputeAbsentPurchaseDate(t *testing.T) {
	item := model.Item{
		Price:          decimal.NewFromInt(9999),
		PurchaseDate:   flexdate.ParseString("not a date"),
		RetirementDate: flexdate.ParseString("2024-01-01"),
	}
	rec := Compute(item, time.Now())

	if rec.DailyCost.StringFixed(2) != "0.00" {
		t.Errorf("expected zeroed daily cost, got %s", rec.DailyCost)
	}
	if rec.TotalDays != 0 || rec.DaysUsed != 0 || rec.Unbounded {
		t.Errorf("expected zeroed record, got %+v", rec)
	}
	if rec.ConsumedValue.StringFixed(2) != "0.00" {
		t.Errorf("expected zeroed consumed value, got %s", rec.ConsumedValue)
	}
}

func TestComputeIndefiniteUse(t *testing.T) {
	// 1200 over 30 days: daily 40.00, consumed hits the price cap exactly.
	item := model.Item{
		Price:        decimal.NewFromInt(1200),
		PurchaseDate: flexdate.ParseString("2024-01-01"),
	}
	rec := Compute(item, date(2024, 1, 31))

	if !rec.Unbounded {
		t.Error("expected unbounded lifespan")
	}
	if rec.DaysUsed != 30 {
		t.Errorf("expected 30 days used, got %d", rec.DaysUsed)
	}
	if got := rec.DailyCost.StringFixed(2); got != "40.00" {
		t.Errorf("expected daily cost 40.00, got %s", got)
	}
	if got := rec.ConsumedValue.StringFixed(2); got != "1200.00" {
		t.Errorf("expected consumed value 1200.00, got %s", got)
	}
}

func TestComputeFuturePurchaseDate(t *testing.T) {
	item := model.Item{
		Price:        decimal.NewFromInt(500),
		PurchaseDate: flexdate.ParseString("2030-01-01"),
	}
	rec := Compute(item, date(2024, 1, 1))

	if rec.DaysUsed != 0 {
		t.Errorf("future purchase should floor days used at 0, got %d", rec.DaysUsed)
	}
	if got := rec.DailyCost.StringFixed(2); got != "0.00" {
		t.Errorf("expected 0.00 daily cost, got %s", got)
	}
}

func TestComputeConsumedValueNeverExceedsPrice(t *testing.T) {
	// Tiny price over a long span: per-day rounding must not push the
	// consumed value past the price.
	item := model.Item{
		Price:        decimal.NewFromFloat(99.99),
		PurchaseDate: flexdate.ParseString("2000-01-01"),
	}
	rec := Compute(item, date(2024, 1, 1))

	if rec.ConsumedValue.GreaterThan(item.Price) {
		t.Errorf("consumed %s exceeds price %s", rec.ConsumedValue, item.Price)
	}
}

func TestComputeRetiredAndSold(t *testing.T) {
	item := model.Item{
		Price:          decimal.NewFromInt(1000),
		SoldPrice:      decimal.NewNullDecimal(decimal.NewFromInt(400)),
		PurchaseDate:   flexdate.ParseString("2023-01-01"),
		RetirementDate: flexdate.ParseString("2023-04-01"),
	}
	// Evaluated long after retirement: days used stays fixed at the
	// owned lifespan.
	rec := Compute(item, date(2025, 6, 1))

	if rec.TotalDays != 90 {
		t.Errorf("expected 90 total days, got %d", rec.TotalDays)
	}
	if rec.DaysUsed != 90 {
		t.Errorf("expected days used pinned to lifespan, got %d", rec.DaysUsed)
	}
	if got := rec.DailyCost.StringFixed(2); got != "6.67" {
		t.Errorf("expected daily cost 6.67 (600/90), got %s", got)
	}
	if !rec.OriginalDailyCost.Valid {
		t.Fatal("expected original daily cost for sold item")
	}
	if got := rec.OriginalDailyCost.Decimal.StringFixed(2); got != "11.11" {
		t.Errorf("expected original daily cost 11.11 (1000/90), got %s", got)
	}
}

func TestComputeRetiredUnsoldHasNoOriginalDailyCost(t *testing.T) {
	item := model.Item{
		Price:          decimal.NewFromInt(900),
		PurchaseDate:   flexdate.ParseString("2023-01-01"),
		RetirementDate: flexdate.ParseString("2023-04-01"),
	}
	rec := Compute(item, date(2024, 1, 1))
	if rec.OriginalDailyCost.Valid {
		t.Error("unsold item should not carry an original daily cost")
	}
	if got := rec.DailyCost.StringFixed(2); got != "10.00" {
		t.Errorf("expected 10.00 (900/90), got %s", got)
	}
}

func TestComputeZeroLifespanAnomaly(t *testing.T) {
	// Retired before purchase: no amortization, full net cost consumed.
	item := model.Item{
		Price:          decimal.NewFromInt(800),
		SoldPrice:      decimal.NewNullDecimal(decimal.NewFromInt(300)),
		PurchaseDate:   flexdate.ParseString("2023-06-01"),
		RetirementDate: flexdate.ParseString("2023-01-01"),
	}
	rec := Compute(item, date(2024, 1, 1))

	if got := rec.DailyCost.StringFixed(2); got != "0.00" {
		t.Errorf("expected 0.00 daily cost, got %s", got)
	}
	if !rec.OriginalDailyCost.Valid || rec.OriginalDailyCost.Decimal.StringFixed(2) != "0.00" {
		t.Errorf("expected 0.00 original daily cost, got %+v", rec.OriginalDailyCost)
	}
	if got := rec.ConsumedValue.StringFixed(2); got != "500.00" {
		t.Errorf("expected net cost 500.00 consumed, got %s", got)
	}
	if rec.DaysUsed != 0 {
		t.Errorf("expected days used floored at 0, got %d", rec.DaysUsed)
	}
}

func TestStatusPriorityRetiredOverExpired(t *testing.T) {
	item := model.Item{
		PurchaseDate:   flexdate.ParseString("2020-01-01"),
		WarrantyDate:   flexdate.ParseString("2021-01-01"),
		RetirementDate: flexdate.ParseString("2022-01-01"),
	}
	s := For(item, date(2024, 1, 1))
	if s.Kind != StatusRetired {
		t.Errorf("retired must win over expired, got %q", s.Kind)
	}
}

func TestStatusFutureRetirementNotYetRetired(t *testing.T) {
	// A future retirement date leaves status to the warranty rules.
	item := model.Item{
		PurchaseDate:   flexdate.ParseString("2023-01-01"),
		WarrantyDate:   flexdate.ParseString("2023-06-01"),
		RetirementDate: flexdate.ParseString("2030-01-01"),
	}
	s := For(item, date(2024, 1, 1))
	if s.Kind != StatusExpired {
		t.Errorf("expected expired (warranty passed, retirement in future), got %q", s.Kind)
	}
}

func TestStatusNoWarranty(t *testing.T) {
	item := model.Item{PurchaseDate: flexdate.ParseString("2023-01-01")}
	if s := For(item, date(2024, 1, 1)); s.Kind != StatusActive {
		t.Errorf("no warranty date should be active, got %q", s.Kind)
	}
}

func TestStatusWarrantyWindowBoundaries(t *testing.T) {
	now := date(2024, 1, 1)

	// Exactly 30 days out: expiring.
	item := model.Item{WarrantyDate: flexdate.FromTime(now.AddDate(0, 0, 30))}
	s := For(item, now)
	if s.Kind != StatusExpiring || s.DaysToWarranty != 30 {
		t.Errorf("30 days out: expected expiring(30), got %+v", s)
	}

	// 31 days out: still active.
	item.WarrantyDate = flexdate.FromTime(now.AddDate(0, 0, 31))
	if s := For(item, now); s.Kind != StatusActive {
		t.Errorf("31 days out: expected active, got %q", s.Kind)
	}

	// Warranty expired earlier today: expired, not expiring.
	item.WarrantyDate = flexdate.FromTime(now.Add(-time.Hour))
	if s := For(item, now); s.Kind != StatusExpired {
		t.Errorf("same-day lapse: expected expired, got %q", s.Kind)
	}
}

func TestRecordJSONFormatting(t *testing.T) {
	item := model.Item{
		Price:          decimal.NewFromInt(1000),
		SoldPrice:      decimal.NewNullDecimal(decimal.NewFromInt(400)),
		PurchaseDate:   flexdate.ParseString("2023-01-01"),
		RetirementDate: flexdate.ParseString("2023-04-01"),
	}
	b, err := json.Marshal(Compute(item, date(2024, 1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"dailyCost":"6.67"`, `"originalDailyCost":"11.11"`, `"totalDays":90`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("expected %s in %s", want, b)
		}
	}

	// Unbounded lifespan encodes totalDays as null.
	b, err = json.Marshal(Compute(model.Item{
		Price:        decimal.NewFromInt(100),
		PurchaseDate: flexdate.ParseString("2023-01-01"),
	}, date(2024, 1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"totalDays":null`) || !strings.Contains(string(b), `"unbounded":true`) {
		t.Errorf("expected null totalDays and unbounded flag, got %s", b)
	}
}
