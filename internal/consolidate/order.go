package consolidate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tailor-etl/internal/identity"
	"github.com/tailor-etl/internal/schema"
)

// BuildOrders collapses the raw rows into one order per distinct order
// number. Each group is sorted newest first and the first row wins whole:
// a newer row's blank note deliberately shadows an older row's populated one.
// That matches what the business has been reporting against for years, so it
// stays, sharp edge and all.
//
// The customer is resolved from the first row in the group that carries any
// identity; orders whose rows are all anonymous are emitted with an empty
// customer_id for the orphan report.
func BuildOrders(records []*schema.RawRecord, customerIDs map[string]int) []schema.Order {
	groups := make(map[string][]*schema.RawRecord)
	for _, r := range records {
		if r.OrderNo == "" {
			continue
		}
		groups[r.OrderNo] = append(groups[r.OrderNo], r)
	}

	orderNos := make([]string, 0, len(groups))
	for orderNo := range groups {
		orderNos = append(orderNos, orderNo)
	}
	sort.Strings(orderNos)

	orders := make([]schema.Order, 0, len(orderNos))
	for _, orderNo := range orderNos {
		rows := groups[orderNo]
		sortLatestFirst(rows)
		kept := rows[0]

		customerID := ""
		for _, r := range rows {
			if !identity.Resolvable(r) {
				continue
			}
			if id, ok := customerIDs[identity.Key(r)]; ok {
				customerID = strconv.Itoa(id)
				break
			}
		}

		orders = append(orders, schema.Order{
			OrderNo:    orderNo,
			CustomerID: customerID,
			Date:       kept.DateRaw,
			Note:       normalizeNote(kept.Note),
		})
	}
	return orders
}

// normalizeNote flattens multi-line notes to a single line so they survive
// the CSV round trip unchanged.
func normalizeNote(note string) string {
	note = strings.ReplaceAll(note, "\r\n", " ")
	note = strings.ReplaceAll(note, "\n", " ")
	note = strings.ReplaceAll(note, "\r", " ")
	return note
}
