package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailor-etl/internal/schema"
)

// Read loads the raw export into memory, choosing the reader by extension:
// .xlsx opens the workbook directly, everything else is treated as CSV.
func Read(path string) ([]*schema.RawRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}

// ReadCSV reads the raw spreadsheet export from a CSV file. The header row is
// validated against the expected schema before any record is built.
func ReadCSV(path string) ([]*schema.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source %s: %w", path, err)
	}

	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	idx, err := schema.BuildColumnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []*schema.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Unreadable rows mean a broken export. There is no partial
			// success mode: the operator fixes the source and reruns.
			return nil, fmt.Errorf("failed to read source row %d: %w", len(records)+2, err)
		}
		records = append(records, buildRecord(idx, row, len(records)))
	}

	fmt.Printf("Read %d raw records from %s\n", len(records), path)
	return records, nil
}

// buildRecord maps one source row onto the typed record using the validated
// column index.
func buildRecord(idx schema.ColumnIndex, row []string, position int) *schema.RawRecord {
	rec := &schema.RawRecord{
		Index:        position,
		OrderNo:      idx.Value(row, schema.ColOrderNo),
		CusNo:        idx.Value(row, schema.ColCusNo),
		FirstName:    idx.Value(row, schema.ColName),
		MiddleName:   idx.Value(row, schema.ColMName),
		LastName:     idx.Value(row, schema.ColLName),
		Add1:         idx.Value(row, schema.ColAdd1),
		Add2:         idx.Value(row, schema.ColAdd2),
		Add3:         idx.Value(row, schema.ColAdd3),
		Add4:         idx.Value(row, schema.ColAdd4),
		Email:        idx.Value(row, schema.ColEmail),
		Mobile:       idx.Value(row, schema.ColMobile),
		PhOffice:     idx.Value(row, schema.ColPhOff),
		PhHome:       idx.Value(row, schema.ColPhRes),
		DateRaw:      idx.Value(row, schema.ColDate),
		Note:         idx.Value(row, schema.ColONote),
		Measurements: make(map[string]string),
	}
	rec.Date = ParseDate(rec.DateRaw)
	for _, col := range schema.MeasurementColumns() {
		if v := idx.Value(row, col); v != "" {
			rec.Measurements[col] = v
		}
	}
	return rec
}
