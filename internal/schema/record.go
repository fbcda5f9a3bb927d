package schema

import "time"

// RawRecord is one row of the source spreadsheet export. The export is a
// flattened join, so a single row can carry customer, order and any mix of
// garment measurement data at once. Empty string means the cell was blank.
type RawRecord struct {
	Index int // original row position, 0-based, header excluded

	OrderNo string
	CusNo   string

	FirstName  string
	MiddleName string
	LastName   string
	Add1       string
	Add2       string
	Add3       string
	Add4       string
	Email      string
	Mobile     string
	PhOffice   string
	PhHome     string

	DateRaw string
	Date    time.Time // zero when DateRaw is blank or unparseable
	Note    string

	// Garment measurement cells keyed by source column name. Only the
	// columns listed in the garment field groups appear here.
	Measurements map[string]string
}

// HasDate reports whether the row carried a parseable order date.
func (r *RawRecord) HasDate() bool {
	return !r.Date.IsZero()
}

// Measurement returns the cell for a garment column, or "" when blank.
func (r *RawRecord) Measurement(col string) string {
	return r.Measurements[col]
}

// HasAnyMeasurement reports whether at least one of the given garment
// columns is non-blank on this row.
func (r *RawRecord) HasAnyMeasurement(cols []string) bool {
	for _, col := range cols {
		if r.Measurements[col] != "" {
			return true
		}
	}
	return false
}
