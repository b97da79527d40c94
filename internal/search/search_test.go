package search

import (
	"testing"

	"github.com/jlhu/perdiem/internal/model"
)

func testItems() []model.Item {
	return []model.Item{
		{Name: "MacBook Pro", Category: "电子产品", Notes: "work laptop"},
		{Name: "Office Chair", Category: "家具"},
		{Name: "Kindle", Category: "电子产品", Notes: "reading"},
		{Name: "Misc", Notes: "laptop sleeve"},
	}
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(testItems(), "电子产品", "")
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}

	for _, category := range []string{"", CategoryAll} {
		if got := Filter(testItems(), category, ""); len(got) != 4 {
			t.Errorf("category %q should pass everything, got %d items", category, len(got))
		}
	}
}

func TestFilterByQuery(t *testing.T) {
	// Matches name case-insensitively.
	if got := Filter(testItems(), "", "macbook"); len(got) != 1 || got[0].Name != "MacBook Pro" {
		t.Errorf("expected MacBook Pro, got %v", got)
	}

	// Matches notes too.
	if got := Filter(testItems(), "", "laptop"); len(got) != 2 {
		t.Errorf("expected 2 matches on notes, got %d", len(got))
	}

	// Matches category text.
	if got := Filter(testItems(), "", "家具"); len(got) != 1 {
		t.Errorf("expected 1 match on category text, got %d", len(got))
	}

	// Whitespace-only query matches everything.
	if got := Filter(testItems(), "", "   "); len(got) != 4 {
		t.Errorf("blank query should match everything, got %d", len(got))
	}
}

func TestFilterCombinesCategoryAndQuery(t *testing.T) {
	got := Filter(testItems(), "电子产品", "laptop")
	if len(got) != 1 || got[0].Name != "MacBook Pro" {
		t.Errorf("expected only MacBook Pro, got %v", got)
	}
}

func TestCategories(t *testing.T) {
	got := Categories(testItems())
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct categories, got %v", got)
	}
	if got[0] != "电子产品" || got[1] != "家具" {
		t.Errorf("expected first-seen order, got %v", got)
	}
}
