package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/tailor-etl/internal/schema"
)

// OrderCount is the number of consolidated orders one customer placed.
type OrderCount struct {
	CustomerID string
	Count      int
}

// CountOrders tallies orders per customer, most orders first. Orphaned orders
// (blank customer_id) are excluded; they have their own report.
func CountOrders(orders []schema.Order) []OrderCount {
	counts := make(map[string]int)
	for _, o := range orders {
		if o.CustomerID == "" {
			continue
		}
		counts[o.CustomerID]++
	}

	out := make([]OrderCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, OrderCount{CustomerID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out
}

// WriteOrderCounts writes the per-customer counts to
// <dir>/customer_order_counts.csv.
func WriteOrderCounts(dir string, counts []OrderCount) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create query directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, "customer_order_counts.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"customer_id", "order_count"}); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, c := range counts {
		if err := w.Write([]string{c.CustomerID, strconv.Itoa(c.Count)}); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
