package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailor-etl/internal/config"
	"github.com/tailor-etl/internal/consolidate"
	"github.com/tailor-etl/internal/db"
	"github.com/tailor-etl/internal/schema"
	"github.com/tailor-etl/internal/tables"
)

func testResult() *consolidate.Result {
	jacketValues := make([]string, len(schema.Jacket.Columns))
	jacketValues[7] = "40" // jchest

	return &consolidate.Result{
		Customers: []schema.Customer{
			{CustomerID: 1, FirstName: "Ravi", LastName: "Mehta", Email: "ravi@example.com", Mobile: "5551111", Date: "15/06/2021"},
			{CustomerID: 2, FirstName: "Anita", PhHome: "5552222", Date: "01/01/2022"},
		},
		Orders: []schema.Order{
			{OrderNo: "1001", CustomerID: "1", Date: "15/06/2021", Note: "rush"},
			{OrderNo: "1002", CustomerID: "2", Date: "01/01/2022"},
			{OrderNo: "1003", CustomerID: "", Date: "02/01/2022", Note: "orphan"},
		},
		Measurements: map[string][]schema.Measurement{
			schema.Jacket.Name: {
				{MeasurementID: "m-1", CustomerID: 1, OrderNo: "1001", Date: "15/06/2021", Values: jacketValues},
			},
			schema.Shirt.Name: {},
			schema.Pant.Name:  {},
		},
	}
}

func openTestDB(t *testing.T) *db.Connection {
	t.Helper()
	conn, err := db.NewConnection(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "tailor.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, tables.WriteAll(dir, testResult()))

	conn := openTestDB(t)
	require.NoError(t, New(conn).Load(dir))

	var count int
	require.NoError(t, conn.DB.QueryRow("SELECT COUNT(*) FROM Customer").Scan(&count))
	assert.Equal(t, 2, count)

	require.NoError(t, conn.DB.QueryRow("SELECT COUNT(*) FROM Orders").Scan(&count))
	assert.Equal(t, 3, count)

	// Orphaned order lands as NULL, not as an empty string
	require.NoError(t, conn.DB.QueryRow("SELECT COUNT(*) FROM Orders WHERE customer_id IS NULL").Scan(&count))
	assert.Equal(t, 1, count)

	// No dangling non-null references
	require.NoError(t, conn.DB.QueryRow(`
		SELECT COUNT(*) FROM Orders o
		LEFT JOIN Customer c ON o.customer_id = c.customer_id
		WHERE o.customer_id IS NOT NULL AND c.customer_id IS NULL
	`).Scan(&count))
	assert.Equal(t, 0, count)

	// Spreadsheet-era columns arrive under their relational names
	var firstName, chest string
	require.NoError(t, conn.DB.QueryRow("SELECT first_name FROM Customer WHERE customer_id = 1").Scan(&firstName))
	assert.Equal(t, "Ravi", firstName)
	require.NoError(t, conn.DB.QueryRow("SELECT chest FROM JacketMeasurement WHERE measurement_id = 'm-1'").Scan(&chest))
	assert.Equal(t, "40", chest)

	// Blank measurement cells arrive as NULL
	require.NoError(t, conn.DB.QueryRow("SELECT COUNT(*) FROM JacketMeasurement WHERE waist IS NULL").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoadAppends(t *testing.T) {
	dir := t.TempDir()
	result := testResult()
	require.NoError(t, tables.WriteAll(dir, result))

	conn := openTestDB(t)
	require.NoError(t, New(conn).Load(dir))

	// A second run over new data appends rather than recreating
	result.Customers = []schema.Customer{
		{CustomerID: 3, FirstName: "Third", Mobile: "5553333"},
	}
	result.Orders = []schema.Order{
		{OrderNo: "2001", CustomerID: "3", Date: "05/05/2022"},
	}
	result.Measurements = map[string][]schema.Measurement{
		schema.Jacket.Name: {}, schema.Shirt.Name: {}, schema.Pant.Name: {},
	}
	dir2 := t.TempDir()
	require.NoError(t, tables.WriteAll(dir2, result))
	require.NoError(t, New(conn).Load(dir2))

	var count int
	require.NoError(t, conn.DB.QueryRow("SELECT COUNT(*) FROM Customer").Scan(&count))
	assert.Equal(t, 3, count)
	require.NoError(t, conn.DB.QueryRow("SELECT COUNT(*) FROM Orders").Scan(&count))
	assert.Equal(t, 4, count)
}

func TestInsertStatementPlaceholders(t *testing.T) {
	stmt := insertStatement("Orders", orderColumns)
	assert.Equal(t, "INSERT INTO Orders (orderNo, customer_id, date, onote) VALUES ($1, $2, $3, $4)", stmt)
}
