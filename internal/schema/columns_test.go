package schema

import (
	"strings"
	"testing"
)

func fullHeader() []string {
	header := []string{
		"orderno", "cusno", "name", "mname", "lname",
		"add1", "add2", "add3", "add4",
		"email", "mobile", "phoff", "phres", "date", "onote",
	}
	return append(header, MeasurementColumns()...)
}

func TestMeasurementColumnsDistinct(t *testing.T) {
	cols := MeasurementColumns()
	if len(cols) != 26 {
		t.Errorf("expected 26 distinct measurement columns, got %d: %v", len(cols), cols)
	}

	seen := make(map[string]bool)
	for _, col := range cols {
		if seen[col] {
			t.Errorf("duplicate measurement column %q", col)
		}
		seen[col] = true
	}

	// scollar is deliberately shared between jacket and shirt but must only
	// appear once in the distinct list.
	if !seen["scollar"] {
		t.Errorf("scollar missing from measurement columns")
	}
}

func TestBuildColumnIndexAcceptsFullHeader(t *testing.T) {
	idx, err := BuildColumnIndex(fullHeader())
	if err != nil {
		t.Fatalf("BuildColumnIndex() error: %v", err)
	}
	if _, ok := idx[ColOrderNo]; !ok {
		t.Errorf("index missing %q", ColOrderNo)
	}
}

func TestBuildColumnIndexNormalizesHeaders(t *testing.T) {
	header := fullHeader()
	header[0] = "  OrderNo "
	idx, err := BuildColumnIndex(header)
	if err != nil {
		t.Fatalf("BuildColumnIndex() error: %v", err)
	}
	row := make([]string, len(header))
	row[0] = "1001"
	if got := idx.Value(row, ColOrderNo); got != "1001" {
		t.Errorf("Value(orderno) = %q, want %q", got, "1001")
	}
}

func TestBuildColumnIndexReportsAllMissing(t *testing.T) {
	header := fullHeader()
	// Drop email and the whole pant group
	var trimmed []string
	for _, col := range header {
		if col == "email" || strings.HasPrefix(col, "p") && col != "phoff" && col != "phres" {
			continue
		}
		trimmed = append(trimmed, col)
	}

	_, err := BuildColumnIndex(trimmed)
	if err == nil {
		t.Fatal("BuildColumnIndex() should fail on missing columns")
	}
	for _, want := range []string{"email", "plength", "pothers"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should name missing column %q", err, want)
		}
	}
}

func TestBuildColumnIndexCusnoOptional(t *testing.T) {
	var header []string
	for _, col := range fullHeader() {
		if col != "cusno" {
			header = append(header, col)
		}
	}
	if _, err := BuildColumnIndex(header); err != nil {
		t.Errorf("cusno should be optional, got error: %v", err)
	}
}

func TestValueShortRow(t *testing.T) {
	idx, err := BuildColumnIndex(fullHeader())
	if err != nil {
		t.Fatalf("BuildColumnIndex() error: %v", err)
	}
	if got := idx.Value([]string{"1001"}, ColEmail); got != "" {
		t.Errorf("Value on short row = %q, want empty", got)
	}
}
