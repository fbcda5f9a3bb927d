// Package consolidate turns the denormalized spreadsheet export into the four
// normalized tables: one canonical customer per resolved identity, one order
// per order number, and a per-garment measurement history.
package consolidate

import (
	"fmt"

	"github.com/tailor-etl/internal/schema"
)

// Result holds one run's derived tables. Everything is an independent copy of
// the raw data; nothing aliases the input records.
type Result struct {
	Customers []schema.Customer
	Orders    []schema.Order

	// Measurements by garment name, in schema.Garments order.
	Measurements map[string][]schema.Measurement

	// CustomerIDs maps identity key to assigned customer_id.
	CustomerIDs map[string]int
}

// Run executes the full consolidation over the raw records:
// resolve identities, merge customers, collapse orders, extract measurements.
func Run(records []*schema.RawRecord) *Result {
	customers, ids := BuildCustomers(records)
	orders := BuildOrders(records, ids)

	measurements := make(map[string][]schema.Measurement, len(schema.Garments))
	for _, g := range schema.Garments {
		measurements[g.Name] = ExtractMeasurements(records, g, ids)
	}

	orphans := 0
	for _, o := range orders {
		if o.CustomerID == "" {
			orphans++
		}
	}

	fmt.Printf("Consolidated %d raw records into %d customers, %d orders (%d orphaned)\n",
		len(records), len(customers), len(orders), orphans)
	for _, g := range schema.Garments {
		fmt.Printf("  %s measurements: %d\n", g.Name, len(measurements[g.Name]))
	}

	return &Result{
		Customers:    customers,
		Orders:       orders,
		Measurements: measurements,
		CustomerIDs:  ids,
	}
}
