package identity

import (
	"fmt"
	"strings"

	"github.com/tailor-etl/internal/schema"
)

// NormalizePhone strips every non-digit character from a raw phone field.
// Returns "" when nothing usable remains.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BestPhone picks the record's phone for identity purposes:
// mobile first, then office, then residential.
func BestPhone(r *schema.RawRecord) string {
	for _, raw := range []string{r.Mobile, r.PhOffice, r.PhHome} {
		if p := NormalizePhone(raw); p != "" {
			return p
		}
	}
	return ""
}

// Key derives the record's identity key. Two rows share a customer exactly
// when their keys are equal.
//
// A normalized phone is the key when any phone channel is present. Otherwise
// the key is a composite of the name parts, the email and the row's original
// position. The position term keeps genuinely distinct phoneless records from
// colliding, at the documented cost that true duplicates without a phone
// never merge.
func Key(r *schema.RawRecord) string {
	if p := BestPhone(r); p != "" {
		return p
	}
	return fmt.Sprintf("%s|%s|%s|%s|#%d",
		strings.ToLower(strings.TrimSpace(r.FirstName)),
		strings.ToLower(strings.TrimSpace(r.MiddleName)),
		strings.ToLower(strings.TrimSpace(r.LastName)),
		strings.ToLower(strings.TrimSpace(r.Email)),
		r.Index)
}

// Resolvable reports whether the record carries any identity information at
// all. Rows with no phone, no name parts and no email are join artifacts:
// they still get a key, but no customer record is created for them and their
// orders surface in the orphan report instead.
func Resolvable(r *schema.RawRecord) bool {
	if BestPhone(r) != "" {
		return true
	}
	return strings.TrimSpace(r.FirstName) != "" ||
		strings.TrimSpace(r.MiddleName) != "" ||
		strings.TrimSpace(r.LastName) != "" ||
		strings.TrimSpace(r.Email) != ""
}

// NormalizeEmail lowercases and trims an email for duplicate grouping.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
