// Package report runs the analytical queries over a run's consolidated
// tables: duplicate identities that survived consolidation, per-customer
// order counts, and orders with no resolved customer.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/tailor-etl/internal/identity"
	"github.com/tailor-etl/internal/schema"
)

// DuplicateGroup is a set of customers sharing one cleaned phone or email.
type DuplicateGroup struct {
	Key       string
	Customers []schema.Customer
}

// DuplicatePhones groups customers by cleaned phone number (mobile first,
// then office, then residential) and returns the groups with more than one
// member, sorted by key then date.
func DuplicatePhones(customers []schema.Customer) []DuplicateGroup {
	return groupBy(customers, func(c schema.Customer) string {
		for _, raw := range []string{c.Mobile, c.PhOffice, c.PhHome} {
			if p := identity.NormalizePhone(raw); p != "" {
				return p
			}
		}
		return ""
	})
}

// DuplicateEmails groups customers by trimmed, lowercased email.
func DuplicateEmails(customers []schema.Customer) []DuplicateGroup {
	return groupBy(customers, func(c schema.Customer) string {
		return identity.NormalizeEmail(c.Email)
	})
}

func groupBy(customers []schema.Customer, key func(schema.Customer) string) []DuplicateGroup {
	groups := make(map[string][]schema.Customer)
	for _, c := range customers {
		if k := key(c); k != "" {
			groups[k] = append(groups[k], c)
		}
	}

	var out []DuplicateGroup
	for k, members := range groups {
		if len(members) < 2 {
			continue
		}
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Date < members[j].Date
		})
		out = append(out, DuplicateGroup{Key: k, Customers: members})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// PrintDuplicates writes both duplicate reports in a readable form.
func PrintDuplicates(w io.Writer, customers []schema.Customer) {
	phone := DuplicatePhones(customers)
	email := DuplicateEmails(customers)

	fmt.Fprintf(w, "Customers with duplicate phone numbers: %d groups\n", len(phone))
	printGroups(w, phone)
	fmt.Fprintf(w, "\nCustomers with duplicate emails: %d groups\n", len(email))
	printGroups(w, email)
}

func printGroups(w io.Writer, groups []DuplicateGroup) {
	for _, g := range groups {
		fmt.Fprintf(w, "  %s:\n", g.Key)
		for _, c := range g.Customers {
			fmt.Fprintf(w, "    %d\t%s %s\t%s\t%s\n",
				c.CustomerID, c.FirstName, c.LastName, c.Email, c.Date)
		}
	}
}
