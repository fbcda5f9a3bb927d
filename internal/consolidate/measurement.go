package consolidate

import (
	"github.com/google/uuid"

	"github.com/tailor-etl/internal/identity"
	"github.com/tailor-etl/internal/schema"
)

// ExtractMeasurements pulls one garment's measurement history out of the raw
// rows. Unlike customers and orders there is no merging here: every row that
// belongs to a known customer and carries at least one value for the garment
// becomes its own measurement record, so a customer keeps every historical
// fitting. Rows that are blank for the garment are join artifacts and are
// dropped without comment.
func ExtractMeasurements(records []*schema.RawRecord, g schema.Garment, customerIDs map[string]int) []schema.Measurement {
	var out []schema.Measurement
	for _, r := range records {
		if !identity.Resolvable(r) {
			continue
		}
		id, ok := customerIDs[identity.Key(r)]
		if !ok {
			continue
		}
		if !r.HasAnyMeasurement(g.Columns) {
			continue
		}

		values := make([]string, len(g.Columns))
		for i, col := range g.Columns {
			values[i] = r.Measurement(col)
		}
		out = append(out, schema.Measurement{
			MeasurementID: uuid.NewString(),
			CustomerID:    id,
			OrderNo:       r.OrderNo,
			Date:          r.DateRaw,
			Values:        values,
		})
	}
	return out
}
