package consolidate

import (
	"sort"

	"github.com/tailor-etl/internal/schema"
)

// sortLatestFirst orders a group of raw rows by parsed date descending.
// Rows without a parseable date sort last, i.e. they are treated as the
// oldest information in the group. The sort is stable so that rows sharing
// a date keep their source order.
func sortLatestFirst(rows []*schema.RawRecord) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.HasDate() != b.HasDate() {
			return a.HasDate()
		}
		return a.Date.After(b.Date)
	})
}

// firstNonEmpty walks a latest-first group and returns the first non-blank
// value the accessor yields. This is the latest-wins-with-back-fill merge
// rule: the newest row wins, older rows fill in what it left blank.
func firstNonEmpty(rows []*schema.RawRecord, get func(*schema.RawRecord) string) string {
	for _, r := range rows {
		if v := get(r); v != "" {
			return v
		}
	}
	return ""
}
