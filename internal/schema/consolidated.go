package schema

// Consolidated record types. All fields are kept as strings, exactly as they
// will be written to the consolidated CSVs: the files must round-trip without
// any further transformation, so nothing is re-parsed on the way out.

// Customer is the canonical record for one resolved identity.
type Customer struct {
	CustomerID int
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
	Date       string // most recent order date, source format
}

// Order is one consolidated order. CustomerID is empty for orphaned orders
// whose source rows carried no resolvable identity.
type Order struct {
	OrderNo    string
	CustomerID string
	Date       string
	Note       string
}

// Measurement is one garment measurement row. Values holds the garment's
// source columns in the garment's column order.
type Measurement struct {
	MeasurementID string
	CustomerID    int
	OrderNo       string
	Date          string
	Values        []string
}
