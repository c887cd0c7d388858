// Package dateutils provides the date and timestamp parsing used by the
// CAMT.053 extractors.
package dateutils

import (
	"fmt"
	"time"

	"github.com/wax13003/CAMT53-parser/internal/parsererror"
)

// DateLayoutISO is the strict calendar-date layout (YYYY-MM-DD).
const DateLayoutISO = "2006-01-02"

// TimestampLayouts lists the ISO-8601 date-time shapes seen in CAMT.053
// documents, with and without fractional seconds and UTC offsets.
var TimestampLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// ParseISODate parses a strict ISO-8601 calendar date. When strict parsing
// fails and the string is longer than the date layout, it retries on the
// first 10 characters, tolerating trailing time or zone fragments on a
// date-only field. The returned bool reports whether the truncation fallback
// was used, so the caller can surface a warning.
func ParseISODate(s string) (time.Time, bool, error) {
	t, err := time.Parse(DateLayoutISO, s)
	if err == nil {
		return t, false, nil
	}
	if len(s) > len(DateLayoutISO) {
		if t, retryErr := time.Parse(DateLayoutISO, s[:len(DateLayoutISO)]); retryErr == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, &parsererror.MalformedDateError{Value: s, Err: err}
}

// ParseISOTimestamp parses an ISO-8601 date-time, trying each known layout.
func ParseISOTimestamp(s string) (time.Time, error) {
	for _, layout := range TimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", s)
}
