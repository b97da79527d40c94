package flexdate

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSentinelsAreAbsent(t *testing.T) {
	cases := []any{nil, 0, int64(0), "0", "", "   ", float64(0)}
	for _, c := range cases {
		if d := Parse(c); d.Valid() {
			t.Errorf("Parse(%#v): expected absent, got %v", c, d.Time())
		}
	}
}

func TestParseISODate(t *testing.T) {
	d := Parse("2024-01-31")
	if !d.Valid() {
		t.Fatal("expected valid date")
	}
	want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
	if !d.Time().Equal(want) {
		t.Errorf("expected %v, got %v", want, d.Time())
	}
	if d.Raw() != "2024-01-31" {
		t.Errorf("expected raw input preserved, got %q", d.Raw())
	}
}

func TestParseSeparatorVariants(t *testing.T) {
	want := time.Date(2023, 4, 5, 0, 0, 0, 0, time.Local)
	for _, s := range []string{"2023.04.05", "2023/04/05", "2023-4-5", " 2023-04-05 "} {
		d := ParseString(s)
		if !d.Valid() {
			t.Errorf("ParseString(%q): expected valid", s)
			continue
		}
		if !d.Time().Equal(want) {
			t.Errorf("ParseString(%q): expected %v, got %v", s, want, d.Time())
		}
	}
}

func TestParseMonthOnly(t *testing.T) {
	d := ParseString("2024-03")
	if !d.Valid() {
		t.Fatal("expected valid date")
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	if !d.Time().Equal(want) {
		t.Errorf("expected first of month %v, got %v", want, d.Time())
	}
}

func TestParseDateTime(t *testing.T) {
	d := ParseString("2024-06-15 13:30:00")
	if !d.Valid() {
		t.Fatal("expected valid datetime")
	}
	want := time.Date(2024, 6, 15, 13, 30, 0, 0, time.Local)
	if !d.Time().Equal(want) {
		t.Errorf("expected %v, got %v", want, d.Time())
	}
}

func TestTimestampSecondsVsMilliseconds(t *testing.T) {
	// At or below the threshold: seconds.
	d := Parse(int64(100_000_000_000))
	if !d.Valid() || d.Time().Unix() != 100_000_000_000 {
		t.Errorf("1e11 should parse as seconds, got %v", d.Time())
	}

	// Just above: milliseconds.
	d = Parse(int64(100_000_000_001))
	if !d.Valid() || d.Time().UnixMilli() != 100_000_000_001 {
		t.Errorf("1e11+1 should parse as milliseconds, got %v", d.Time())
	}

	// Ordinary seconds value, as number and as digit string.
	for _, v := range []any{int64(1700000000), "1700000000"} {
		d = Parse(v)
		if !d.Valid() || d.Time().Unix() != 1700000000 {
			t.Errorf("Parse(%v): expected 1700000000s, got %v", v, d.Time())
		}
	}
}

func TestUnparseableIsAbsent(t *testing.T) {
	for _, s := range []string{"not a date", "13-14", "soon", "2024-13-45"} {
		if d := ParseString(s); d.Valid() {
			t.Errorf("ParseString(%q): expected absent, got %v", s, d.Time())
		}
	}
	if d := ParseString("garbage"); d.Raw() != "garbage" {
		t.Errorf("raw input should survive a failed parse, got %q", d.Raw())
	}
}

func TestFromTime(t *testing.T) {
	now := time.Now()
	if d := FromTime(now); !d.Valid() || !d.Time().Equal(now) {
		t.Error("FromTime should round-trip a non-zero time")
	}
	if d := FromTime(time.Time{}); d.Valid() {
		t.Error("zero time should be absent")
	}
}

func TestUnmarshalJSONMixedEncodings(t *testing.T) {
	var got struct {
		A Date `json:"a"`
		B Date `json:"b"`
		C Date `json:"c"`
		D Date `json:"d"`
		E Date `json:"e"`
		F Date `json:"f"`
	}
	input := `{
		"a": "2024-01-01",
		"b": 1700000000,
		"c": null,
		"d": "0",
		"e": "2024-03",
		"f": true
	}`
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !got.A.Valid() {
		t.Error("ISO string should be valid")
	}
	if !got.B.Valid() || got.B.Time().Unix() != 1700000000 {
		t.Error("numeric timestamp should be valid seconds")
	}
	if got.C.Valid() || got.D.Valid() {
		t.Error("null and \"0\" should be absent")
	}
	if !got.E.Valid() || got.E.Time().Day() != 1 {
		t.Error("month-only string should anchor to the first")
	}
	if got.F.Valid() {
		t.Error("bool should decode as absent, not error")
	}
}

func TestMarshalJSONPreservesRawText(t *testing.T) {
	d := ParseString("2023.04.05")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2023.04.05"` {
		t.Errorf("expected raw text, got %s", b)
	}

	b, err = json.Marshal(Date{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("absent should marshal as null, got %s", b)
	}
}
