package models

import (
	"strings"
	"time"

	dErrors "bloodnet/pkg/domain-errors"
)

// DateLayout is the calendar-date format used by every date in the catalog.
const DateLayout = "2006-01-02"

// ParseDate parses a catalog date (YYYY-MM-DD, UTC midnight). RFC 3339
// timestamps are accepted as well.
//
// Errors: returns CodeInvalidDate for empty or unparseable input. Callers
// must not fold this into "no match": a bad date is a data-entry error.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, dErrors.New(dErrors.CodeInvalidDate, "date is empty")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeInvalidDate, "date "+quote(s)+" is not YYYY-MM-DD")
	}
	return t, nil
}

func quote(s string) string {
	return `"` + s + `"`
}
