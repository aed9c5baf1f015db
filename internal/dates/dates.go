// Package dates handles the DD/MM/YYYY date strings used by the upstream
// transaction store. Dates are parsed to midnight UTC so that day arithmetic
// stays exact.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout accepts both zero-padded and bare day/month components,
// e.g. "01/06/2025" and "1/6/2025".
const Layout = "2/1/2006"

// DisplayLayout is the canonical zero-padded form used in responses.
const DisplayLayout = "02/01/2006"

// Parse converts a DD/MM/YYYY string to a UTC date. Out-of-range day or
// month values are rejected.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected DD/MM/YYYY): %w", s, err)
	}
	return t, nil
}

// Format renders a date in the canonical DD/MM/YYYY form.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

// InRange reports whether date falls within [from, to], inclusive on both
// bounds. A from after to yields an empty range, never an error; callers
// that require a valid range must validate before filtering.
func InRange(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}

// DaysBetween returns the number of whole days from start to date.
func DaysBetween(start, date time.Time) int {
	return int(date.Sub(start) / (24 * time.Hour))
}

// BucketIndex assigns a date to a zero-based fixed-width day window anchored
// on rangeStart, so bucket 0 always begins exactly on the range start rather
// than on a calendar boundary. The date must not precede rangeStart.
func BucketIndex(date, rangeStart time.Time, bucketDays int) int {
	if bucketDays <= 0 {
		return 0
	}
	return DaysBetween(rangeStart, date) / bucketDays
}

// BucketCount returns the number of buckets needed to cover the inclusive
// range [from, to] with windows of bucketDays days.
func BucketCount(from, to time.Time, bucketDays int) int {
	if bucketDays <= 0 || to.Before(from) {
		return 0
	}
	rangeDays := DaysBetween(from, to) + 1
	return (rangeDays + bucketDays - 1) / bucketDays
}

// BucketSpan returns the inclusive start and end dates of the given bucket.
// The final bucket is clipped to rangeEnd.
func BucketSpan(rangeStart, rangeEnd time.Time, index, bucketDays int) (time.Time, time.Time) {
	start := rangeStart.AddDate(0, 0, index*bucketDays)
	end := start.AddDate(0, 0, bucketDays-1)
	if end.After(rangeEnd) {
		end = rangeEnd
	}
	return start, end
}

// MonthKey returns the sortable YYYY-MM grouping key for a date.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthLabel returns the human-readable month name, e.g. "June 2025".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// MonthLabelFromKey converts a YYYY-MM key back to its display label.
// Returns the key unchanged if it does not parse.
func MonthLabelFromKey(key string) string {
	t, err := time.ParseInLocation("2006-01", key, time.UTC)
	if err != nil {
		return key
	}
	return MonthLabel(t)
}
