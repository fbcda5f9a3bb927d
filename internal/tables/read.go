package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tailor-etl/internal/schema"
)

// ReadCustomers loads a consolidated customers file back into memory.
func ReadCustomers(path string) ([]schema.Customer, error) {
	rows, err := readFile(path, len(CustomerHeader))
	if err != nil {
		return nil, err
	}
	customers := make([]schema.Customer, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad customer_id %q: %w", path, i+2, row[0], err)
		}
		customers = append(customers, schema.Customer{
			CustomerID: id,
			FirstName:  row[1], MiddleName: row[2], LastName: row[3],
			Add1: row[4], Add2: row[5], Add3: row[6], Add4: row[7],
			Email: row[8], Mobile: row[9], PhOffice: row[10], PhHome: row[11],
			Date: row[12],
		})
	}
	return customers, nil
}

// ReadOrders loads a consolidated orders file back into memory.
func ReadOrders(path string) ([]schema.Order, error) {
	rows, err := readFile(path, len(OrderHeader))
	if err != nil {
		return nil, err
	}
	orders := make([]schema.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, schema.Order{
			OrderNo:    row[0],
			CustomerID: row[1],
			Date:       row[2],
			Note:       row[3],
		})
	}
	return orders, nil
}

// ReadMeasurements loads one garment's measurement file back into memory.
func ReadMeasurements(path string, g schema.Garment) ([]schema.Measurement, error) {
	rows, err := readFile(path, len(MeasurementHeader(g)))
	if err != nil {
		return nil, err
	}
	measurements := make([]schema.Measurement, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad customer_id %q: %w", path, i+2, row[1], err)
		}
		values := make([]string, len(g.Columns))
		copy(values, row[4:])
		measurements = append(measurements, schema.Measurement{
			MeasurementID: row[0],
			CustomerID:    id,
			OrderNo:       row[2],
			Date:          row[3],
			Values:        values,
		})
	}
	return measurements, nil
}

// readFile reads a consolidated CSV and checks the column count against the
// expected header width.
func readFile(path string, width int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	all, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}
	if len(all[0]) != width {
		return nil, fmt.Errorf("%s has %d columns, expected %d", path, len(all[0]), width)
	}
	return all[1:], nil
}
