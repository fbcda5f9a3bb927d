package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tailor-etl/internal/schema"
)

// ReadXLSX reads the raw export straight from the spreadsheet workbook,
// skipping the manual CSV export step. The first sheet is the database sheet.
func ReadXLSX(path string) ([]*schema.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	idx, err := schema.BuildColumnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]*schema.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, buildRecord(idx, row, len(records)))
	}

	fmt.Printf("Read %d raw records from %s (sheet %s)\n", len(records), path, sheet)
	return records, nil
}
