package model

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/flexdate"
)

func TestNetPrice(t *testing.T) {
	item := Item{Price: decimal.NewFromInt(1000)}
	if !item.NetPrice().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unsold item: expected net 1000, got %s", item.NetPrice())
	}
	if item.Sold() {
		t.Error("item without sold price should not report sold")
	}

	item.SoldPrice = decimal.NewNullDecimal(decimal.NewFromInt(400))
	if !item.Sold() {
		t.Error("item with sold price should report sold")
	}
	if !item.NetPrice().Equal(decimal.NewFromInt(600)) {
		t.Errorf("sold item: expected net 600, got %s", item.NetPrice())
	}
}

func TestIndefiniteUse(t *testing.T) {
	item := Item{}
	if !item.IndefiniteUse() {
		t.Error("absent retirement date should mean indefinite use")
	}

	item.RetirementDate = flexdate.ParseString("not a date")
	if !item.IndefiniteUse() {
		t.Error("unparseable retirement date should mean indefinite use")
	}

	item.RetirementDate = flexdate.ParseString("2024-01-01")
	if item.IndefiniteUse() {
		t.Error("parsed retirement date should mean retired")
	}
}
