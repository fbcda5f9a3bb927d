package schema

import (
	"fmt"
	"strings"
)

// Source column names for the customer/order portion of the export. These are
// fixed by the spreadsheet template; a missing column is a schema error, not
// something to paper over with nulls.
const (
	ColOrderNo = "orderno"
	ColCusNo   = "cusno"
	ColName    = "name"
	ColMName   = "mname"
	ColLName   = "lname"
	ColAdd1    = "add1"
	ColAdd2    = "add2"
	ColAdd3    = "add3"
	ColAdd4    = "add4"
	ColEmail   = "email"
	ColMobile  = "mobile"
	ColPhOff   = "phoff"
	ColPhRes   = "phres"
	ColDate    = "date"
	ColONote   = "onote"
)

// Garment groups the measurement columns of one clothing category.
type Garment struct {
	Name    string   // jacket, shirt, pant
	Table   string   // output table name
	Columns []string // source column names, output order
	// Renames maps source columns to the relational loader's column names.
	Renames map[string]string
}

// The three garment categories of the export. scollar appears in both the
// jacket and shirt groups because the tailor records one collar size and the
// downstream schema surfaces it on both tables.
var (
	Jacket = Garment{
		Name:  "jacket",
		Table: "JacketMeasurement",
		Columns: []string{
			"jname", "jl", "jnl", "jbl", "jxback", "jtsleeve",
			"jhs", "jchest", "jwaist", "scollar", "jothers",
		},
		Renames: map[string]string{
			"jname":    "style_name",
			"jl":       "jacket_length",
			"jnl":      "natural_length",
			"jbl":      "back_length",
			"jxback":   "x_back",
			"jtsleeve": "to_sleeve",
			"jhs":      "half_shoulder",
			"jchest":   "chest",
			"jwaist":   "waist",
			"scollar":  "collar",
			"jothers":  "other_notes",
		},
	}

	Shirt = Garment{
		Name:  "shirt",
		Table: "ShirtMeasurement",
		Columns: []string{
			"slength", "sshool", "stosleeve", "schest", "swaist",
			"scollar", "vcoatlen", "sherlen", "sothers",
		},
		Renames: map[string]string{
			"slength":   "length",
			"sshool":    "half_shoulder",
			"stosleeve": "to_sleeve",
			"schest":    "chest",
			"swaist":    "waist",
			"scollar":   "collar",
			"vcoatlen":  "waist_coat_length",
			"sherlen":   "sherwani_length",
			"sothers":   "other_notes",
		},
	}

	Pant = Garment{
		Name:  "pant",
		Table: "PantMeasurement",
		Columns: []string{
			"plength", "pinseem", "pwaist", "phips", "pbottom", "pknee", "pothers",
		},
		Renames: map[string]string{
			"plength": "length",
			"pinseem": "inseem",
			"pwaist":  "waist",
			"phips":   "hips",
			"pbottom": "bottom",
			"pknee":   "knee",
			"pothers": "other_notes",
		},
	}
)

// Garments lists the three categories in output order.
var Garments = []Garment{Jacket, Shirt, Pant}

// requiredColumns are the customer/order columns every export must carry.
// cusno is optional: older exports predate it.
var requiredColumns = []string{
	ColOrderNo, ColName, ColMName, ColLName,
	ColAdd1, ColAdd2, ColAdd3, ColAdd4,
	ColEmail, ColMobile, ColPhOff, ColPhRes,
	ColDate, ColONote,
}

// MeasurementColumns returns the distinct garment columns across all three
// categories, in a stable order.
func MeasurementColumns() []string {
	seen := make(map[string]bool)
	var cols []string
	for _, g := range Garments {
		for _, col := range g.Columns {
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
		}
	}
	return cols
}

// ColumnIndex maps lowercased header names to their position in the header row.
type ColumnIndex map[string]int

// BuildColumnIndex validates a header row against the expected schema and
// returns the column positions. It fails fast with the full list of missing
// columns so the operator can fix the export in one pass.
func BuildColumnIndex(header []string) (ColumnIndex, error) {
	idx := make(ColumnIndex, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	for _, col := range MeasurementColumns() {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("source is missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// Value returns the cell for a column, or "" when the row is short or the
// column is absent (only possible for optional columns such as cusno).
func (idx ColumnIndex) Value(row []string, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
