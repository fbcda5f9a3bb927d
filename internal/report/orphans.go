package report

import (
	"fmt"
	"io"

	"github.com/tailor-etl/internal/schema"
)

// OrphanOrders returns the orders whose source rows carried no resolvable
// customer identity. They are a valid terminal state, not an error.
func OrphanOrders(orders []schema.Order) []schema.Order {
	var out []schema.Order
	for _, o := range orders {
		if o.CustomerID == "" {
			out = append(out, o)
		}
	}
	return out
}

// PrintOrphans lists the orphaned orders.
func PrintOrphans(w io.Writer, orders []schema.Order) {
	orphans := OrphanOrders(orders)
	fmt.Fprintf(w, "Orders without customer_id: %d\n", len(orphans))
	for _, o := range orphans {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", o.OrderNo, o.Date, o.Note)
	}
}
