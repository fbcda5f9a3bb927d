package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailor-etl/internal/schema"
)

func TestDuplicatePhones(t *testing.T) {
	customers := []schema.Customer{
		{CustomerID: 1, FirstName: "Ravi", Mobile: "(555) 111-2222", Date: "01/01/2022"},
		{CustomerID: 2, FirstName: "R", PhOffice: "555 111 2222", Date: "01/01/2020"},
		{CustomerID: 3, FirstName: "Other", Mobile: "999", Date: "01/01/2021"},
		{CustomerID: 4, FirstName: "NoPhone", Email: "x@y.com"},
	}

	groups := DuplicatePhones(customers)
	require.Len(t, groups, 1)
	assert.Equal(t, "5551112222", groups[0].Key)
	require.Len(t, groups[0].Customers, 2)
	// Sorted by date within the group
	assert.Equal(t, 2, groups[0].Customers[0].CustomerID)
	assert.Equal(t, 1, groups[0].Customers[1].CustomerID)
}

func TestDuplicateEmails(t *testing.T) {
	customers := []schema.Customer{
		{CustomerID: 1, Email: "Ravi@Example.com"},
		{CustomerID: 2, Email: " ravi@example.com "},
		{CustomerID: 3, Email: "other@example.com"},
		{CustomerID: 4},
		{CustomerID: 5},
	}

	groups := DuplicateEmails(customers)
	require.Len(t, groups, 1, "blank emails must not group together")
	assert.Equal(t, "ravi@example.com", groups[0].Key)
	assert.Len(t, groups[0].Customers, 2)
}

func TestPrintDuplicates(t *testing.T) {
	customers := []schema.Customer{
		{CustomerID: 1, FirstName: "Ravi", LastName: "Mehta", Mobile: "555"},
		{CustomerID: 2, FirstName: "Ravi", LastName: "Mehta", PhHome: "555"},
	}

	var buf bytes.Buffer
	PrintDuplicates(&buf, customers)
	out := buf.String()
	assert.Contains(t, out, "duplicate phone numbers: 1 groups")
	assert.Contains(t, out, "Ravi Mehta")
}

func TestCountOrders(t *testing.T) {
	orders := []schema.Order{
		{OrderNo: "1", CustomerID: "7"},
		{OrderNo: "2", CustomerID: "7"},
		{OrderNo: "3", CustomerID: "3"},
		{OrderNo: "4", CustomerID: ""},
		{OrderNo: "5", CustomerID: "7"},
		{OrderNo: "6", CustomerID: "3"},
		{OrderNo: "7", CustomerID: "9"},
	}

	counts := CountOrders(orders)
	require.Len(t, counts, 3, "orphans are excluded from the counts")
	assert.Equal(t, OrderCount{CustomerID: "7", Count: 3}, counts[0])
	assert.Equal(t, OrderCount{CustomerID: "3", Count: 2}, counts[1])
	assert.Equal(t, OrderCount{CustomerID: "9", Count: 1}, counts[2])
}

func TestWriteOrderCounts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "queries")
	path, err := WriteOrderCounts(dir, []OrderCount{
		{CustomerID: "7", Count: 3},
		{CustomerID: "3", Count: 2},
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"customer_id", "order_count"},
		{"7", "3"},
		{"3", "2"},
	}, rows)
}

func TestOrphanOrders(t *testing.T) {
	orders := []schema.Order{
		{OrderNo: "1", CustomerID: "2"},
		{OrderNo: "2", CustomerID: "", Note: "anonymous walk-in"},
	}

	orphans := OrphanOrders(orders)
	require.Len(t, orphans, 1)
	assert.Equal(t, "2", orphans[0].OrderNo)

	var buf bytes.Buffer
	PrintOrphans(&buf, orders)
	assert.Contains(t, buf.String(), "Orders without customer_id: 1")
	assert.Contains(t, buf.String(), "anonymous walk-in")
}
