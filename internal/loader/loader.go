// Package loader appends a run's consolidated CSV files to the relational
// database, creating the tables on first use.
package loader

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/tailor-etl/internal/db"
	"github.com/tailor-etl/internal/schema"
	"github.com/tailor-etl/internal/tables"
)

// Loader copies consolidated tables into the database.
type Loader struct {
	conn *db.Connection
}

// New creates a loader over an open connection.
func New(conn *db.Connection) *Loader {
	return &Loader{conn: conn}
}

// Load creates the five tables if needed, then appends every row from the
// consolidated files in dir. Inserts follow foreign key order: customers
// before orders and measurements.
func (l *Loader) Load(dir string) error {
	for _, stmt := range createStatements() {
		if _, err := l.conn.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	if err := l.loadCustomers(filepath.Join(dir, tables.CustomersFile)); err != nil {
		return err
	}
	if err := l.loadOrders(filepath.Join(dir, tables.OrdersFile)); err != nil {
		return err
	}
	for _, g := range schema.Garments {
		if err := l.loadMeasurements(filepath.Join(dir, g.Table+".csv"), g); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadCustomers(path string) error {
	customers, err := tables.ReadCustomers(path)
	if err != nil {
		return err
	}

	stmt, err := l.conn.DB.Prepare(insertStatement("Customer", customerColumns))
	if err != nil {
		return fmt.Errorf("failed to prepare Customer insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, c := range customers {
		_, err := stmt.Exec(
			c.CustomerID, nullIfEmpty(c.FirstName), nullIfEmpty(c.MiddleName), nullIfEmpty(c.LastName),
			nullIfEmpty(c.Add1), nullIfEmpty(c.Add2), nullIfEmpty(c.Add3), nullIfEmpty(c.Add4),
			nullIfEmpty(c.Email), nullIfEmpty(c.Mobile), nullIfEmpty(c.PhOffice), nullIfEmpty(c.PhHome),
			nullIfEmpty(c.Date),
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer %d: %w", c.CustomerID, err)
		}
		inserted++
		if inserted%1000 == 0 {
			fmt.Printf("Inserted %d customers...\n", inserted)
		}
	}
	fmt.Printf("Loaded %d customers\n", inserted)
	return nil
}

func (l *Loader) loadOrders(path string) error {
	orders, err := tables.ReadOrders(path)
	if err != nil {
		return err
	}

	stmt, err := l.conn.DB.Prepare(insertStatement("Orders", orderColumns))
	if err != nil {
		return fmt.Errorf("failed to prepare Orders insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, o := range orders {
		_, err := stmt.Exec(o.OrderNo, nullableCustomerID(o.CustomerID), nullIfEmpty(o.Date), nullIfEmpty(o.Note))
		if err != nil {
			return fmt.Errorf("failed to insert order %s: %w", o.OrderNo, err)
		}
		inserted++
		if inserted%1000 == 0 {
			fmt.Printf("Inserted %d orders...\n", inserted)
		}
	}
	fmt.Printf("Loaded %d orders\n", inserted)
	return nil
}

func (l *Loader) loadMeasurements(path string, g schema.Garment) error {
	measurements, err := tables.ReadMeasurements(path, g)
	if err != nil {
		return err
	}

	stmt, err := l.conn.DB.Prepare(insertStatement(g.Table, measurementColumns(g)))
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", g.Table, err)
	}
	defer stmt.Close()

	for _, m := range measurements {
		args := []interface{}{m.MeasurementID, m.CustomerID, nullIfEmpty(m.OrderNo), nullIfEmpty(m.Date)}
		for _, v := range m.Values {
			args = append(args, nullIfEmpty(v))
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert %s row %s: %w", g.Table, m.MeasurementID, err)
		}
	}
	fmt.Printf("Loaded %d %s rows\n", len(measurements), g.Table)
	return nil
}

// nullIfEmpty converts blank cells to SQL NULL.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nullableCustomerID converts the orders file's customer_id column, where an
// empty cell marks an orphaned order.
func nullableCustomerID(s string) interface{} {
	if s == "" {
		return nil
	}
	if id, err := strconv.Atoi(s); err == nil {
		return id
	}
	return s
}
