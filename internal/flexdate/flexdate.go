// Package flexdate normalizes the loose date encodings found in personal
// inventory data into a single value type with an explicit "absent" state.
//
// Inventory files and forms mix ISO strings, bare year-month strings,
// dot/slash separators, Unix timestamps in seconds or milliseconds, and a
// small zoo of "no date" sentinels (null, 0, "0", empty). Normalization
// happens once, at the ingestion boundary; everything downstream works
// with a Date and never re-inspects raw input.
package flexdate

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// secondsThreshold separates second- from millisecond-resolution Unix
// timestamps by magnitude. Values up to 1e11 stay second-resolution until
// the year ~5138.
const secondsThreshold = 100_000_000_000

// Date is either a normalized instant or absent. The zero value is absent.
// A Date also remembers the raw input text, which the UI shows verbatim.
type Date struct {
	raw   string
	t     time.Time
	valid bool
}

// FromTime wraps a time.Time. The zero time is treated as absent.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Date{raw: t.Format("2006-01-02"), t: t, valid: true}
}

// Parse normalizes any supported date representation. It never panics;
// unrecognized or unparseable values come back absent.
func Parse(v any) Date {
	switch x := v.(type) {
	case nil:
		return Date{}
	case Date:
		return x
	case time.Time:
		return FromTime(x)
	case *time.Time:
		if x == nil {
			return Date{}
		}
		return FromTime(*x)
	case int:
		return fromUnix(int64(x), strconv.Itoa(x))
	case int64:
		return fromUnix(x, strconv.FormatInt(x, 10))
	case float64:
		return fromUnixFloat(x)
	case json.Number:
		return parseNumber(x)
	case string:
		return ParseString(x)
	default:
		return Date{}
	}
}

// ParseString normalizes a string representation:
//
//  1. Empty or "0" is absent.
//  2. All-digit strings are Unix timestamps (seconds or milliseconds by
//     magnitude).
//  3. Anything else is trimmed, its "." and "/" separators unified to "-",
//     a bare year-month anchored to the first of the month, then parsed as
//     a calendar date, retrying once with a midnight time suffix.
func ParseString(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return Date{}
	}

	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Date{raw: s}
		}
		return fromUnix(n, s)
	}

	norm := strings.NewReplacer(".", "-", "/", "-").Replace(s)
	if parts := strings.Split(norm, "-"); len(parts) == 2 {
		norm += "-01"
	}

	if t, ok := parseCalendar(norm); ok {
		return Date{raw: s, t: t, valid: true}
	}
	if t, ok := parseCalendar(norm + "T00:00:00"); ok {
		return Date{raw: s, t: t, valid: true}
	}
	return Date{raw: s}
}

// calendarLayouts are tried in order against the separator-unified string.
var calendarLayouts = []string{
	"2006-1-2",
	"2006-1-2T15:04:05",
	"2006-1-2 15:04:05",
	time.RFC3339,
}

func parseCalendar(s string) (time.Time, bool) {
	for _, layout := range calendarLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseNumber(n json.Number) Date {
	if i, err := n.Int64(); err == nil {
		return fromUnix(i, n.String())
	}
	if f, err := n.Float64(); err == nil {
		return fromUnixFloat(f)
	}
	return Date{}
}

func fromUnix(n int64, raw string) Date {
	if n == 0 {
		return Date{}
	}
	var t time.Time
	if n > secondsThreshold {
		t = time.UnixMilli(n)
	} else {
		t = time.Unix(n, 0)
	}
	return Date{raw: raw, t: t, valid: true}
}

func fromUnixFloat(f float64) Date {
	raw := strconv.FormatFloat(f, 'f', -1, 64)
	return fromUnix(int64(f), raw)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Valid reports whether the date holds an instant.
func (d Date) Valid() bool { return d.valid }

// Time returns the normalized instant, or the zero time when absent.
func (d Date) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return d.t
}

// Raw returns the input text the date was parsed from. Sentinel inputs
// come back empty.
func (d Date) Raw() string { return d.raw }

// String returns the raw input text when present, otherwise the formatted
// instant, otherwise the empty string.
func (d Date) String() string {
	if d.raw != "" {
		return d.raw
	}
	if d.valid {
		return d.t.Format("2006-01-02")
	}
	return ""
}

// UnmarshalJSON accepts strings, numbers and null. It never returns an
// error for values it cannot interpret; those decode as absent, which is
// the contract callers rely on when ingesting messy item files.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*d = Date{}
			return nil
		}
		*d = ParseString(str)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		// Bools, arrays, objects: absent.
		*d = Date{}
		return nil
	}
	*d = parseNumber(n)
	return nil
}

// MarshalJSON emits the raw input text, or null when absent with no raw
// form. This keeps stored dates byte-stable across export/import cycles.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.raw == "" && !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}
