// Package coerce holds the parameter-coercion conventions shared by every
// tool: identifier routing between ID-keyed and name-keyed request fields,
// comma-separated lists, and calendar-month date-range defaults.
package coerce

import (
	"strings"
	"time"
)

// DateLayout is the wire format for all Firefly III dates.
const DateLayout = "2006-01-02"

// NumericID reports whether s is a plausible backend ID: non-empty and
// consisting only of decimal digits after trimming.
func NumericID(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RouteRef routes an entity reference to either an ID-keyed or a name-keyed
// request field. Exactly one of the returned values is non-empty for a
// non-blank input. Each field of a request routes independently.
func RouteRef(ref string) (id, name string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ""
	}
	if NumericID(ref) {
		return ref, ""
	}
	return "", ref
}

// SplitList parses a comma-separated parameter into trimmed, non-empty items.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// MonthRange returns the first and last day of now's calendar month.
// It is the default period for the aggregate tools when the caller supplies
// no explicit date range.
func MonthRange(now time.Time) (start, end string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// PeriodOrMonth returns the supplied range when both ends are set, otherwise
// the current calendar month.
func PeriodOrMonth(start, end string, now time.Time) (string, string) {
	if strings.TrimSpace(start) != "" && strings.TrimSpace(end) != "" {
		return start, end
	}
	return MonthRange(now)
}

// DateOrDefault returns s when non-blank, otherwise now formatted for the wire.
func DateOrDefault(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return now.Format(DateLayout)
	}
	return s
}

// Blank reports whether a parameter is unset under the empty-means-absent
// convention (empty or whitespace-only).
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
