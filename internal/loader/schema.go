package loader

import (
	"fmt"
	"strings"

	"github.com/tailor-etl/internal/schema"
)

// Relational column names for the customer table, in insert order. The
// consolidated CSV's spreadsheet-era names (name, mname, lname) are renamed
// to the names the reporting side expects.
var customerColumns = []string{
	"customer_id", "first_name", "middle_name", "last_name",
	"add1", "add2", "add3", "add4",
	"email", "mobile", "phoff", "phres", "last_ordered_date",
}

var orderColumns = []string{"orderNo", "customer_id", "date", "onote"}

// createStatements returns the DDL for all five tables. Types are kept to
// TEXT and INTEGER so the same statements run on both postgres and sqlite.
func createStatements() []string {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS Customer (
			customer_id INTEGER PRIMARY KEY,
			first_name TEXT,
			middle_name TEXT,
			last_name TEXT,
			add1 TEXT,
			add2 TEXT,
			add3 TEXT,
			add4 TEXT,
			email TEXT,
			mobile TEXT,
			phoff TEXT,
			phres TEXT,
			last_ordered_date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS Orders (
			orderNo TEXT PRIMARY KEY,
			customer_id INTEGER REFERENCES Customer(customer_id),
			date TEXT,
			onote TEXT
		)`,
	}
	for _, g := range schema.Garments {
		stmts = append(stmts, createMeasurementTable(g))
	}
	return stmts
}

// createMeasurementTable builds one garment table's DDL with the loader's
// renamed columns.
func createMeasurementTable(g schema.Garment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", g.Table)
	b.WriteString("\tmeasurement_id TEXT PRIMARY KEY,\n")
	b.WriteString("\tcustomer_id INTEGER REFERENCES Customer(customer_id),\n")
	b.WriteString("\torderNo TEXT,\n")
	b.WriteString("\tdate TEXT")
	for _, col := range g.Columns {
		fmt.Fprintf(&b, ",\n\t%s TEXT", g.Renames[col])
	}
	b.WriteString("\n)")
	return b.String()
}

// measurementColumns returns one garment table's insert columns.
func measurementColumns(g schema.Garment) []string {
	cols := []string{"measurement_id", "customer_id", "orderNo", "date"}
	for _, col := range g.Columns {
		cols = append(cols, g.Renames[col])
	}
	return cols
}

// insertStatement builds an INSERT with $n placeholders, which both lib/pq
// and modernc sqlite accept.
func insertStatement(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}
