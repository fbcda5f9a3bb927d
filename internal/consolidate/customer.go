package consolidate

import (
	"sort"

	"github.com/tailor-etl/internal/identity"
	"github.com/tailor-etl/internal/schema"
)

// BuildCustomers groups the raw rows by identity key and merges each group
// into one canonical customer. It returns the customers and the
// identity key -> customer_id mapping consumed by the order and measurement
// passes.
//
// Rows with no identity information at all never become customers; their
// orders surface later as orphans.
func BuildCustomers(records []*schema.RawRecord) ([]schema.Customer, map[string]int) {
	groups := make(map[string][]*schema.RawRecord)
	for _, r := range records {
		if !identity.Resolvable(r) {
			continue
		}
		key := identity.Key(r)
		groups[key] = append(groups[key], r)
	}

	// Sort the keys before assigning IDs so repeated runs over the same
	// source produce identical output.
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	customers := make([]schema.Customer, 0, len(keys))
	ids := make(map[string]int, len(keys))
	for i, key := range keys {
		id := i + 1
		ids[key] = id
		customers = append(customers, mergeCustomer(id, groups[key]))
	}
	return customers, ids
}

// mergeCustomer collapses one identity group into a single customer record.
// The group is sorted newest first and every field takes the first non-blank
// value in that order.
func mergeCustomer(id int, rows []*schema.RawRecord) schema.Customer {
	sortLatestFirst(rows)
	return schema.Customer{
		CustomerID: id,
		FirstName:  firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.FirstName }),
		MiddleName: firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.MiddleName }),
		LastName:   firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.LastName }),
		Add1:       firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.Add1 }),
		Add2:       firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.Add2 }),
		Add3:       firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.Add3 }),
		Add4:       firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.Add4 }),
		Email:      firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.Email }),
		Mobile:     firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.Mobile }),
		PhOffice:   firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.PhOffice }),
		PhHome:     firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.PhHome }),
		Date:       firstNonEmpty(rows, func(r *schema.RawRecord) string { return r.DateRaw }),
	}
}
