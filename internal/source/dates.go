package source

import (
	"strings"
	"time"
)

// Date formats seen in the export. Day first: the spreadsheet comes from a
// DD/MM/YYYY locale.
var dateFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"2006-01-02",
}

// ParseDate converts a raw date cell to a time.Time. A blank or unparseable
// cell yields the zero time; bad dates are recovered locally, never fatal.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
