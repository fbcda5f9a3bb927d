// Package tables reads and writes the consolidated CSV files. The writers and
// readers are symmetric: a write followed by a read yields the same rows, so
// downstream tools can treat the files as the canonical store of a run.
package tables

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tailor-etl/internal/consolidate"
	"github.com/tailor-etl/internal/schema"
)

// Output file names under the consolidated-data directory.
const (
	CustomersFile = "ConsolidatedCustomers.csv"
	OrdersFile    = "UpdatedOrders.csv"
)

// CustomerHeader is the column order of the consolidated customers file.
var CustomerHeader = []string{
	"customer_id", "name", "mname", "lname",
	"add1", "add2", "add3", "add4",
	"email", "mobile", "phoff", "phres", "date",
}

// OrderHeader is the column order of the consolidated orders file.
var OrderHeader = []string{"orderNo", "customer_id", "date", "onote"}

// MeasurementHeader returns the column order of one garment's file.
func MeasurementHeader(g schema.Garment) []string {
	header := []string{"measurement_id", "customer_id", "orderNo", "date"}
	return append(header, g.Columns...)
}

// WriteAll writes every table of a consolidation run into dir, creating it if
// needed. Each file is written independently: a failure leaves the files
// already written in place and the rest untouched from the previous run.
func WriteAll(dir string, result *consolidate.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	if err := WriteCustomers(filepath.Join(dir, CustomersFile), result.Customers); err != nil {
		return err
	}
	if err := WriteOrders(filepath.Join(dir, OrdersFile), result.Orders); err != nil {
		return err
	}
	for _, g := range schema.Garments {
		path := filepath.Join(dir, g.Table+".csv")
		if err := WriteMeasurements(path, g, result.Measurements[g.Name]); err != nil {
			return err
		}
	}
	return nil
}

// WriteCustomers writes the consolidated customers file.
func WriteCustomers(path string, customers []schema.Customer) error {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.Itoa(c.CustomerID), c.FirstName, c.MiddleName, c.LastName,
			c.Add1, c.Add2, c.Add3, c.Add4,
			c.Email, c.Mobile, c.PhOffice, c.PhHome, c.Date,
		})
	}
	return writeFile(path, CustomerHeader, rows)
}

// WriteOrders writes the consolidated orders file.
func WriteOrders(path string, orders []schema.Order) error {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{o.OrderNo, o.CustomerID, o.Date, o.Note})
	}
	return writeFile(path, OrderHeader, rows)
}

// WriteMeasurements writes one garment's measurement file.
func WriteMeasurements(path string, g schema.Garment, measurements []schema.Measurement) error {
	rows := make([][]string, 0, len(measurements))
	for _, m := range measurements {
		row := []string{m.MeasurementID, strconv.Itoa(m.CustomerID), m.OrderNo, m.Date}
		rows = append(rows, append(row, m.Values...))
	}
	return writeFile(path, MeasurementHeader(g), rows)
}

// writeFile renders the whole table in memory and writes it in one step, so a
// failed run cannot leave a half-written file behind.
func writeFile(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to render %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(rows), path)
	return nil
}
