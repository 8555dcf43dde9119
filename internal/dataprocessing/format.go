package dataprocessing

import "strconv"

// Header returns a copy of the current column list, suitable as a CSV header
func (t *Table) Header() []string {
	return append([]string(nil), t.Columns...)
}

// Rows renders every record as CSV fields in column order
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.Records))
	for _, rec := range t.Records {
		row := make([]string, 0, len(t.Columns))
		for _, col := range t.Columns {
			row = append(row, rec.field(col))
		}
		rows = append(rows, row)
	}
	return rows
}

// field formats a single column value. Floats use the shortest form that
// round-trips, so identical input produces byte-identical output.
func (r Record) field(column string) string {
	switch column {
	case ColumnID:
		return strconv.FormatInt(r.ID, 10)
	case ColumnCategory:
		return r.Category
	case ColumnValue1:
		return strconv.FormatInt(r.Value1, 10)
	case ColumnValue2:
		return strconv.FormatFloat(r.Value2, 'g', -1, 64)
	case ColumnValue1Plus10:
		return strconv.FormatInt(r.Value1Plus10, 10)
	case ColumnValue2DivValue1:
		return strconv.FormatFloat(r.Value2DivValue1, 'g', -1, 64)
	case ColumnValue1Type:
		return r.Value1Type
	default:
		return ""
	}
}
