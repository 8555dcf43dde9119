package dataprocessing

// Column names at the different pipeline stages
const (
	ColumnID       = "id"
	ColumnCategory = "category"
	ColumnValue1   = "value1"
	ColumnValue2   = "value2"

	ColumnValue1Plus10    = "value1_plus_10"
	ColumnValue2DivValue1 = "value2_div_value1"
	ColumnValue1Type      = "value1_type"
)

// Classification labels for the value1_type column
const (
	Value1TypeHigh   = "High"
	Value1TypeMedium = "Medium"
)

// Record is one row of the table. The derived fields are meaningful only
// when the owning Table lists their column as present.
type Record struct {
	ID       int64
	Category string
	Value1   int64
	Value2   float64

	Value1Plus10    int64
	Value2DivValue1 float64
	Value1Type      string
}

// Table is an ordered collection of records sharing a column schema.
// Columns tracks which columns are present at the current pipeline stage
// and drives the CSV header on output.
type Table struct {
	Columns []string
	Records []Record
}

// BaseColumns returns the raw input schema
func BaseColumns() []string {
	return []string{ColumnID, ColumnCategory, ColumnValue1, ColumnValue2}
}

// NewTable creates a table over the base schema
func NewTable(records ...Record) *Table {
	return &Table{
		Columns: BaseColumns(),
		Records: records,
	}
}

// EmptyTable creates a table with no rows and no columns. This is the
// short-circuit result for empty or unreadable sources.
func EmptyTable() *Table {
	return &Table{}
}

// Empty reports whether the table has no rows
func (t *Table) Empty() bool {
	return len(t.Records) == 0
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Records)
}

// HasColumn reports whether the named column is present at this stage
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// addColumn appends a derived column to the schema if not already present
func (t *Table) addColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}
